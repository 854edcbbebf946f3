// Package tooltip is the tooltip runtime: the registry of live tooltips,
// construction of their display elements, trigger wiring and the delayed
// show/hide state machine.
//
// # Lifecycle
//
//	reg := tooltip.NewRegistry(doc, root, scheduler, tooltip.Options{})
//	err := reg.Register(def) // builds the element, binds listeners
//	...
//	reg.Remove(def.ID)       // cancels timers, unbinds, detaches
//
// # Visibility
//
// Each tooltip moves through Hidden -> PendingShow -> Visible ->
// PendingHide -> Hidden. Show and Hide each schedule one task for the
// definition's delay; scheduling either cancels whatever the other left
// pending, so a quick enter/leave never shows the tooltip. When the show
// task fires the element is positioned with the position package and gets
// the "-visible" class.
//
// # Triggers
//
//   - hover: mouseenter shows, mouseleave hides. Interactive tooltips wait
//     a grace period after leaving the target and stay open if the pointer
//     is over the tooltip; leaving the tooltip hides it.
//   - click: clicking the target toggles; a click anywhere outside both the
//     target and the tooltip hides it.
//   - focus: focus shows, blur hides unless the tooltip is interactive.
package tooltip
