// Package errors provides structured, coded errors for the tooltip system.
//
// Every failure the system can report has a code (e.g., "T010") that maps to:
//   - a category (definition, target, runtime, config, cli)
//   - a short message and a longer explanation
//   - a documentation URL
//
// None of these errors ever reach the end user of a page. The library logs
// them; the CLI prints them with [TooltipError.Format].
//
// # Usage
//
//	err := errors.New("T010").
//	    WithSubject("help-tip").
//	    WithSuggestion("Check that #save-button exists when the definition is loaded")
//
//	fmt.Println(err.Format())
package errors
