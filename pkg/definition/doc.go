// Package definition models the declarative tooltip definitions embedded in
// a page and parses them.
//
// A definition block is a script element with the marker class holding a
// JSON object:
//
//	<script type="application/json" class="shiny-tooltip-definition">
//	{"id": "save-tip", "target": "#save", "content": "Saves the <b>draft</b>",
//	 "placement": "bottom", "trigger": "hover", "delay": 200}
//	</script>
//
// [Parse] applies defaults and validates enums. [ParseStyle] is the small
// parser for the customStyle field; [LintStyle] cross-checks it against a
// real CSS declaration parser.
package definition
