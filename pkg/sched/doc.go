// Package sched provides cancellable scheduled tasks for the tooltip
// show and hide delays.
//
// Three schedulers are provided:
//
//   - [Loop]: a goja_nodejs event loop; every callback runs on one goroutine
//   - [Manual]: a virtual clock driven by [Manual.Advance], for tests and
//     for the CLI's headless runs
//   - JS: the browser's setTimeout (js/wasm builds only)
package sched
