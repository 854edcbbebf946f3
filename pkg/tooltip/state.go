package tooltip

import (
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/dom"
	"github.com/vango-dev/tooltips/pkg/sched"
)

// Phase is where a tooltip is in its show/hide cycle.
type Phase int

const (
	Hidden Phase = iota
	PendingShow
	Visible
	PendingHide
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case PendingShow:
		return "pending-show"
	case Visible:
		return "visible"
	case PendingHide:
		return "pending-hide"
	}
	return "unknown"
}

// State is the runtime state of one registered tooltip. It is created and
// destroyed by the Registry.
type State struct {
	reg     *Registry
	def     definition.Definition
	element dom.Element
	target  dom.Element
	visible bool

	// At most one of showTask and hideTask is non-nil.
	showTask sched.Task
	hideTask sched.Task

	graceTask sched.Task
	unbind    []dom.RemoveFunc
	removed   bool
}

// Definition returns the definition the tooltip was registered with.
func (s *State) Definition() definition.Definition { return s.def }

// Element returns the display element.
func (s *State) Element() dom.Element { return s.element }

// Target returns the element the tooltip is attached to.
func (s *State) Target() dom.Element { return s.target }

// Visible reports whether the tooltip is currently shown.
func (s *State) Visible() bool { return s.visible }

// Removed reports whether the tooltip has been removed from its registry.
func (s *State) Removed() bool { return s.removed }

// Phase reports the current phase. A pending request takes precedence over
// the settled visibility.
func (s *State) Phase() Phase {
	switch {
	case s.showTask != nil:
		return PendingShow
	case s.hideTask != nil:
		return PendingHide
	case s.visible:
		return Visible
	default:
		return Hidden
	}
}
