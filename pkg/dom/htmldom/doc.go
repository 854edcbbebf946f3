// Package htmldom is a headless implementation of the dom interfaces on top
// of golang.org/x/net/html, with CSS selector matching from
// github.com/ericchiang/css.
//
// There is no layout engine: bounding rectangles and the viewport are set
// explicitly with [Element.SetRect] and [Document.SetViewport]. User input
// is simulated with [Document.Click], [Document.PointerEnter],
// [Document.PointerLeave], [Document.Focus] and [Document.Blur]. Mutation
// observers are delivered by [Document.Flush], standing in for the
// browser's microtask checkpoint.
package htmldom
