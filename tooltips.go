package tooltips

import (
	"context"

	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/internal/metrics"
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/dom"
	"github.com/vango-dev/tooltips/pkg/loader"
	"github.com/vango-dev/tooltips/pkg/sched"
	"github.com/vango-dev/tooltips/pkg/tooltip"
)

// Version is the library version exposed on the global handle.
const Version = "0.1.0"

var (
	// ErrNoRoot matches Start failures caused by a missing root container.
	ErrNoRoot error = errors.New("T020")
	// ErrStarted matches a second call to Start.
	ErrStarted error = errors.New("T021")
	// ErrNotStarted matches registrations on a system that never started.
	ErrNotStarted error = errors.New("T022")
)

// System owns the tooltip registry of one page and the loader that fills it.
type System struct {
	cfg   Config
	doc   dom.Document
	sched sched.Scheduler

	stats  *metrics.Collector
	reg    *tooltip.Registry
	loader *loader.Loader
}

// New returns a system for doc. Timers run on s. Nothing touches the page
// until Start.
func New(doc dom.Document, s sched.Scheduler, cfg Config) *System {
	cfg.applyDefaults()
	sys := &System{cfg: cfg, doc: doc, sched: s}
	if cfg.Metrics != nil {
		sys.stats = metrics.New(metrics.Config{Registry: cfg.Metrics})
	}
	return sys
}

// Start locates the root container, registers every definition block in
// the page and watches for blocks inserted later.
//
// If the root container is missing a warning is logged, an error matching
// ErrNoRoot is returned and the system stays inert.
func (s *System) Start(ctx context.Context) error {
	if s.reg != nil {
		return errors.New("T021")
	}

	root := s.doc.GetElementByID(s.cfg.RootID)
	if root == nil {
		s.cfg.Logger.Warn("tooltip root container not found", "id", s.cfg.RootID)
		return errors.New("T020").
			WithSubject(s.cfg.RootID).
			WithSuggestion("Render <div id=\"" + s.cfg.RootID + "\"></div> before starting")
	}

	opts := tooltip.Options{
		ClassPrefix: s.cfg.ClassPrefix,
		GracePeriod: s.cfg.GracePeriod,
		Logger:      s.cfg.Logger,
	}
	lopts := loader.Options{
		Class:  s.cfg.DefinitionClass,
		Logger: s.cfg.Logger,
		Tracer: s.cfg.Tracer,
	}
	if s.stats != nil {
		opts.Observer = s.stats
		lopts.Stats = s.stats
	}

	s.reg = tooltip.NewRegistry(s.doc, root, s.sched, opts)
	s.loader = loader.New(s.doc, s.reg, lopts)
	n := s.loader.Start(ctx)
	s.cfg.Logger.Debug("tooltips started", "version", Version, "registered", n)
	return nil
}

// Register adds a tooltip from code rather than from a definition block.
// The definition is validated and missing fields get their defaults.
func (s *System) Register(def definition.Definition) error {
	if s.reg == nil {
		return errors.New("T022").WithSubject(def.ID)
	}
	def = definition.WithDefaults(def)
	if err := def.Validate(); err != nil {
		return err
	}
	return s.reg.Register(def)
}

// Remove tears down the tooltip with the given id. Unknown ids, and calls
// before Start, are ignored.
func (s *System) Remove(id string) {
	if s.reg == nil {
		return
	}
	s.reg.Remove(id)
}

// Registry gives read access to the live registry. It is nil until Start
// succeeds.
func (s *System) Registry() *tooltip.Registry {
	return s.reg
}

// Started reports whether Start succeeded.
func (s *System) Started() bool {
	return s.reg != nil
}

// Close stops watching for new definition blocks and removes every tooltip.
func (s *System) Close() {
	if s.loader != nil {
		s.loader.Close()
	}
	if s.reg != nil {
		s.reg.RemoveAll()
	}
}
