package definition

import (
	"strings"
	"unicode"
)

// Declaration is one property assignment from a customStyle string. The
// property uses the scripting (camelCase) name.
type Declaration struct {
	Property string
	Value    string
}

// ParseStyle splits "prop: value; prop2: value2" into declarations.
//
// Pieces are split on ';' then ':' and trimmed; only the first two parts of
// a piece are used, and a piece without both a property and a value is
// skipped. A value containing ':' is therefore cut at its first colon.
func ParseStyle(s string) []Declaration {
	var out []Declaration
	for _, piece := range strings.Split(s, ";") {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		parts := strings.Split(piece, ":")
		prop := strings.TrimSpace(parts[0])
		var value string
		if len(parts) > 1 {
			value = strings.TrimSpace(parts[1])
		}
		if prop == "" || value == "" {
			continue
		}
		out = append(out, Declaration{Property: CamelCase(prop), Value: value})
	}
	return out
}

// CamelCase turns a hyphenated CSS property into its scripting name: a
// hyphen followed by a lower-case ASCII letter collapses to the upper-case
// letter ("border-color" -> "borderColor"). Other hyphens are kept.
func CamelCase(prop string) string {
	if !strings.Contains(prop, "-") {
		return prop
	}
	var b strings.Builder
	b.Grow(len(prop))
	for i := 0; i < len(prop); i++ {
		c := prop[i]
		if c == '-' && i+1 < len(prop) && prop[i+1] >= 'a' && prop[i+1] <= 'z' {
			b.WriteRune(unicode.ToUpper(rune(prop[i+1])))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
