// Package dom defines the host environment the tooltip system runs against.
//
// The tooltip engine never touches a browser directly. It reads and writes
// the page through [Document] and [Element], which are implemented by:
//
//   - htmldom: an in-memory document parsed from HTML, used by the CLI and
//     by tests
//   - jsdom: the browser DOM through syscall/js (js/wasm builds only)
//
// All methods are expected to be called from the single thread that also
// delivers events, mutation callbacks and timer callbacks.
package dom
