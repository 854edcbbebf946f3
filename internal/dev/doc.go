// Package dev provides the preview server behind `tooltips serve`.
//
// The server serves one HTML page with the live reload client injected,
// the wasm build under /assets/, a JSON report of the page's tooltip
// definitions under /api/definitions and Prometheus metrics under
// /metrics. A Watcher built on fsnotify reports edits:
//
//   - page edits re-check the definitions, show problems in a browser
//     overlay and reload connected browsers
//   - stylesheet edits refresh stylesheets in place
//   - any other asset edit reloads browsers
//
// # Usage
//
//	cfg, _ := config.LoadOrDefault(".")
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Reload Protocol
//
// The browser connects to /_tooltips/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "css"}                   // Refreshes stylesheets
//	{"type": "error", "error": "..."} // Shows the problem overlay
//	{"type": "clear"}                 // Clears the overlay
package dev
