package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Definition Errors (T001-T009)
	// ============================================

	"T001": {
		Category: CategoryDefinition,
		Message:  "Malformed tooltip definition",
		Detail:   "The definition block does not contain a valid JSON object.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T001",
	},
	"T002": {
		Category: CategoryDefinition,
		Message:  "Invalid tooltip definition field",
		Detail:   "A field of the definition is missing or holds a value outside its allowed set.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T002",
	},
	"T003": {
		Category: CategoryDefinition,
		Message:  "Suspicious custom style",
		Detail:   "The customStyle declarations will not be applied the way a CSS parser would read them.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T003",
	},

	// ============================================
	// Target Errors (T010-T019)
	// ============================================

	"T010": {
		Category: CategoryTarget,
		Message:  "Target element not found",
		Detail:   "No element in the document matches the tooltip's target selector.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T010",
	},
	"T011": {
		Category: CategoryTarget,
		Message:  "Tooltip already registered",
		Detail:   "A tooltip with this id is already registered; the new definition was ignored.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T011",
	},

	// ============================================
	// Runtime Errors (T020-T029)
	// ============================================

	"T020": {
		Category: CategoryRuntime,
		Message:  "Root container not found",
		Detail:   "The element that parents every tooltip is missing, so no tooltip will work on this page.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T020",
	},
	"T021": {
		Category: CategoryRuntime,
		Message:  "System already started",
		Detail:   "Start was called twice on the same tooltip system.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T021",
	},
	"T022": {
		Category: CategoryRuntime,
		Message:  "System not started",
		Detail:   "Tooltips can only be registered after the system found its root container.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T022",
	},

	// ============================================
	// Config Errors (T030-T039)
	// ============================================

	"T030": {
		Category: CategoryConfig,
		Message:  "Invalid tooltips.json",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T030",
	},
	"T031": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T031",
	},
	"T032": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No tooltips.json was found.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T032",
	},

	// ============================================
	// CLI Errors (T040-T049)
	// ============================================

	"T040": {
		Category: CategoryCLI,
		Message:  "Cannot read page",
		Detail:   "The HTML page could not be read or parsed.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T040",
	},
	"T041": {
		Category: CategoryCLI,
		Message:  "Validation failed",
		Detail:   "One or more tooltip definitions on the page have problems.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T041",
	},
	"T042": {
		Category: CategoryCLI,
		Message:  "Unknown template",
		Detail:   "No starter template with this name exists.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T042",
	},
	"T043": {
		Category: CategoryCLI,
		Message:  "File already exists",
		Detail:   "init never overwrites existing files.",
		DocURL:   "https://vango.dev/docs/tooltips/errors/T043",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
