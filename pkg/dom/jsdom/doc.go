//go:build js && wasm

// Package jsdom implements the dom interfaces on the browser's DOM through
// syscall/js. It only builds for GOOS=js GOARCH=wasm.
package jsdom
