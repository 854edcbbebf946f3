// Package tooltips attaches positioned, triggerable tooltips to elements of
// a server-rendered page.
//
// Tooltips are declared by the server as JSON blocks in the page:
//
//	<div id="shiny-tooltips-root"></div>
//	<button id="save">Save</button>
//	<script type="application/json" class="shiny-tooltip-definition">
//	  {"id": "save-help", "target": "#save", "content": "Saves the draft",
//	   "placement": "bottom", "trigger": "hover", "delay": 150}
//	</script>
//
// A System finds the root container, registers every block already in the
// page and keeps registering blocks inserted later:
//
//	sys := tooltips.New(doc, scheduler, tooltips.DefaultConfig())
//	if err := sys.Start(ctx); err != nil {
//	    // the page has no root container; the system stays inert
//	}
//	defer sys.Close()
//
// The document and scheduler come from the host. In the browser that is
// jsdom and sched.JS (see cmd/tooltips-wasm); headless callers use htmldom
// with sched.Loop or the sched.Manual virtual clock.
//
// A System is single threaded: every call, like every DOM callback and timer,
// must run on the host's UI thread.
package tooltips
