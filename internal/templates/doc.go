// Package templates provides starter pages for new tooltip projects.
//
// A template is a set of text/template files rendered into the project
// directory. The tooltips.json file is not part of a template; the init
// command writes it through the config package so both stay in step.
//
// # Available Templates
//
//   - basic: a page with hover and click tooltips
//   - interactive: focus, interactive and custom styled tooltips
//
// # Usage
//
//	tmpl, err := templates.Get("basic")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(dir, templates.Config{ProjectName: "docs"}); err != nil {
//	    return err
//	}
//
// # Template Variables
//
//	{{.ProjectName}}      - Name of the project
//	{{.RootID}}           - id of the tooltip root container
//	{{.DefinitionClass}}  - class of definition script blocks
//	{{.ClassPrefix}}      - prefix of the classes set on tooltips
package templates
