// Package loader discovers tooltip definition blocks in a page and hands
// them to a registry.
//
// A definition block is a script element carrying the definition class
// whose text is one JSON definition:
//
//	<script type="application/json" class="shiny-tooltip-definition">
//	  {"id": "save-help", "target": "#save", "content": "Saves the draft"}
//	</script>
//
// Start registers every block already in the page and then watches the
// body for inserted blocks, including ones nested inside inserted
// subtrees. The loader never deduplicates; the registry ignores ids it
// already knows.
package loader
