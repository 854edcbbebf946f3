package definition

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/vango-dev/tooltips/internal/errors"
)

// LintStyle compares how ParseStyle reads s with how a CSS parser reads it
// and reports each declaration that would be applied differently, for
// example a url() value cut at its first colon or an !important flag that
// ends up inside the value. It returns nil when they agree.
func LintStyle(s string) []error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	text := s
	if !strings.HasSuffix(strings.TrimSpace(text), ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return []error{errors.New("T003").Wrap(err)}
	}

	applied := make(map[string]string)
	for _, d := range ParseStyle(s) {
		applied[d.Property] = d.Value
	}

	var problems []error
	for _, d := range decls {
		prop := CamelCase(strings.TrimSpace(d.Property))
		want := strings.TrimSpace(d.Value)
		got, ok := applied[prop]
		switch {
		case !ok:
			problems = append(problems, errors.New("T003").
				WithSubject(d.Property).
				Wrap(fmt.Errorf("declaration %q is dropped", d.Property+": "+want)))
		case d.Important:
			problems = append(problems, errors.New("T003").
				WithSubject(d.Property).
				Wrap(fmt.Errorf("!important is applied as part of the value %q", got)))
		case got != want:
			problems = append(problems, errors.New("T003").
				WithSubject(d.Property).
				Wrap(fmt.Errorf("value %q is applied as %q", want, got)))
		}
	}
	return problems
}
