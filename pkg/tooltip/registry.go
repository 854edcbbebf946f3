package tooltip

import (
	"log/slog"
	"time"

	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/dom"
	"github.com/vango-dev/tooltips/pkg/sched"
)

// ErrTargetNotFound matches registrations whose target selector resolved
// to nothing.
var ErrTargetNotFound error = errors.New("T010")

const (
	// DefaultClassPrefix is the prefix of every class the registry sets.
	DefaultClassPrefix = "shiny-tooltip"

	// DefaultGracePeriod is how long an interactive hover tooltip waits
	// after the pointer leaves the target before checking whether the
	// pointer reached the tooltip.
	DefaultGracePeriod = 100 * time.Millisecond
)

// Observer is told about lifecycle transitions. Implementations must be
// cheap; they run inside event and timer callbacks.
type Observer interface {
	Registered(id string, trigger definition.Trigger)
	Removed(id string)
	Shown(id string)
	Hidden(id string)
}

type nopObserver struct{}

func (nopObserver) Registered(string, definition.Trigger) {}
func (nopObserver) Removed(string)                        {}
func (nopObserver) Shown(string)                          {}
func (nopObserver) Hidden(string)                         {}

// Options configures a Registry.
type Options struct {
	// ClassPrefix prefixes every class name (default "shiny-tooltip").
	ClassPrefix string

	// GracePeriod is the interactive hover grace window (default 100ms).
	GracePeriod time.Duration

	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Observer receives lifecycle notifications. May be nil.
	Observer Observer
}

func (o *Options) applyDefaults() {
	if o.ClassPrefix == "" {
		o.ClassPrefix = DefaultClassPrefix
	}
	if o.GracePeriod <= 0 {
		o.GracePeriod = DefaultGracePeriod
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
}

// Registry maps tooltip ids to their runtime state. It owns every display
// element and parents them under the root container.
//
// A Registry is not safe for concurrent use; all calls, like all DOM
// callbacks, must come from the host's UI thread.
type Registry struct {
	doc   dom.Document
	root  dom.Element
	sched sched.Scheduler
	opts  Options

	states map[string]*State
	order  []string
}

// NewRegistry returns an empty registry whose display elements are
// appended to root.
func NewRegistry(doc dom.Document, root dom.Element, s sched.Scheduler, opts Options) *Registry {
	opts.applyDefaults()
	return &Registry{
		doc:    doc,
		root:   root,
		sched:  s,
		opts:   opts,
		states: make(map[string]*State),
	}
}

// Register adds a tooltip for def. A definition whose id is already
// registered is ignored and nil is returned. If the target selector matches
// nothing, Register returns an error matching ErrTargetNotFound and leaves
// no state behind.
func (r *Registry) Register(def definition.Definition) error {
	if _, ok := r.states[def.ID]; ok {
		r.opts.Logger.Debug("tooltip already registered", "id", def.ID)
		return nil
	}

	target := r.doc.QuerySelector(def.Target)
	if target == nil {
		return errors.New("T010").
			WithSubject(def.ID).
			WithDetail("No element matches " + def.Target + ".").
			WithSuggestion("Make sure the target is rendered before its definition block")
	}

	s := &State{
		reg:     r,
		def:     def,
		target:  target,
		element: r.buildElement(def),
	}
	r.states[def.ID] = s
	r.order = append(r.order, def.ID)
	r.bind(s)

	r.opts.Logger.Debug("tooltip registered",
		"id", def.ID,
		"target", def.Target,
		"trigger", def.Trigger,
		"placement", def.Placement)
	r.opts.Observer.Registered(def.ID, def.Trigger)
	return nil
}

// Remove tears down the tooltip with the given id: pending timers are
// cancelled, listeners detached, the display element removed from the page
// and the entry erased. Unknown ids are ignored.
func (r *Registry) Remove(id string) {
	s, ok := r.states[id]
	if !ok {
		return
	}

	s.cancelShow()
	s.cancelHide()
	sched.Cancel(s.graceTask)
	s.graceTask = nil
	for _, unbind := range s.unbind {
		unbind()
	}
	s.unbind = nil
	if s.element.Parent() != nil {
		s.element.Remove()
	}
	s.removed = true
	if s.visible {
		s.visible = false
		r.opts.Observer.Hidden(id)
	}

	delete(r.states, id)
	for i, x := range r.order {
		if x == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.opts.Logger.Debug("tooltip removed", "id", id)
	r.opts.Observer.Removed(id)
}

// RemoveAll removes every tooltip.
func (r *Registry) RemoveAll() {
	for _, id := range r.IDs() {
		r.Remove(id)
	}
}

// Has reports whether a tooltip with id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.states[id]
	return ok
}

// Get returns the state for id.
func (r *Registry) Get(id string) (*State, bool) {
	s, ok := r.states[id]
	return s, ok
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered tooltips.
func (r *Registry) Len() int {
	return len(r.states)
}

// Each calls fn for every tooltip in registration order until fn returns
// false.
func (r *Registry) Each(fn func(*State) bool) {
	for _, id := range r.IDs() {
		s, ok := r.states[id]
		if !ok {
			continue
		}
		if !fn(s) {
			return
		}
	}
}

// class returns the prefixed class name for suffix.
func (r *Registry) class(suffix string) string {
	if suffix == "" {
		return r.opts.ClassPrefix
	}
	return r.opts.ClassPrefix + "-" + suffix
}
