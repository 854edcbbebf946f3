package loader

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/dom"
	"github.com/vango-dev/tooltips/pkg/tooltip"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultClass marks definition blocks.
const DefaultClass = "shiny-tooltip-definition"

const tracerName = "github.com/vango-dev/tooltips/pkg/loader"

// Outcome classifies what happened to one definition block.
type Outcome string

const (
	Registered Outcome = "registered"
	Malformed  Outcome = "malformed"
	Unresolved Outcome = "unresolved"
	// Duplicate blocks reuse an id that is already registered and are
	// ignored.
	Duplicate Outcome = "duplicate"
)

// Registrar accepts parsed definitions. *tooltip.Registry satisfies it.
type Registrar interface {
	Register(def definition.Definition) error
	Has(id string) bool
}

// Stats counts processed definition blocks.
type Stats interface {
	Loaded(source string, outcome Outcome)
}

type nopStats struct{}

func (nopStats) Loaded(string, Outcome) {}

// Options configures a Loader.
type Options struct {
	// Class is the marker class of definition blocks (default
	// "shiny-tooltip-definition").
	Class string

	// Logger receives parse and resolution failures. If nil, slog.Default()
	// is used.
	Logger *slog.Logger

	// Tracer wraps every scan in a span. If nil, the global provider's
	// tracer is used.
	Tracer trace.Tracer

	// Stats may be nil.
	Stats Stats
}

// Loader feeds definition blocks to a Registrar.
type Loader struct {
	doc  dom.Document
	reg  Registrar
	opts Options

	selector string
	sub      dom.Subscription
}

// New returns a loader for doc. Nothing is scanned until Start.
func New(doc dom.Document, reg Registrar, opts Options) *Loader {
	if opts.Class == "" {
		opts.Class = DefaultClass
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(tracerName)
	}
	if opts.Stats == nil {
		opts.Stats = nopStats{}
	}
	return &Loader{
		doc:      doc,
		reg:      reg,
		opts:     opts,
		selector: "script." + opts.Class,
	}
}

// Start scans the document and subscribes to insertions under the body.
// It returns the number of definitions registered by the initial scan.
// Calling Start twice only rescans.
func (l *Loader) Start(ctx context.Context) int {
	_, span := l.opts.Tracer.Start(ctx, "tooltips.load",
		trace.WithAttributes(attribute.String("tooltips.class", l.opts.Class)))
	defer span.End()

	blocks := l.doc.QuerySelectorAll(l.selector)
	n := l.processAll(blocks, "initial")
	span.SetAttributes(
		attribute.Int("tooltips.blocks", len(blocks)),
		attribute.Int("tooltips.registered", n),
	)
	if n < len(blocks) {
		span.SetStatus(codes.Error, "some definitions were skipped")
	}

	if l.sub == nil {
		if body := l.doc.Body(); body != nil {
			l.sub = l.doc.Observe(body, func(ms []dom.Mutation) {
				l.handleMutations(ctx, ms)
			})
		}
	}
	return n
}

// Close stops watching for inserted blocks.
func (l *Loader) Close() {
	if l.sub != nil {
		l.sub.Unsubscribe()
		l.sub = nil
	}
}

func (l *Loader) handleMutations(ctx context.Context, ms []dom.Mutation) {
	var blocks []dom.Element
	for _, m := range ms {
		for _, added := range m.Added {
			if added.HasClass(l.opts.Class) {
				blocks = append(blocks, added)
			}
			blocks = append(blocks, added.QuerySelectorAll(l.selector)...)
		}
	}
	if len(blocks) == 0 {
		return
	}

	_, span := l.opts.Tracer.Start(ctx, "tooltips.mutation")
	defer span.End()
	n := l.processAll(blocks, "mutation")
	span.SetAttributes(
		attribute.Int("tooltips.blocks", len(blocks)),
		attribute.Int("tooltips.registered", n),
	)
}

func (l *Loader) processAll(blocks []dom.Element, source string) int {
	n := 0
	for _, b := range blocks {
		if l.process(b, source) {
			n++
		}
	}
	return n
}

// process parses and registers one block. It reports whether the block
// added a tooltip to the registry.
func (l *Loader) process(block dom.Element, source string) bool {
	def, err := definition.ParseString(block.TextContent())
	if err != nil {
		l.opts.Logger.Error("invalid tooltip definition",
			"code", errors.CodeOf(err),
			"error", err)
		l.opts.Stats.Loaded(source, Malformed)
		return false
	}

	if l.reg.Has(def.ID) {
		l.opts.Logger.Debug("tooltip already registered", "id", def.ID)
		l.opts.Stats.Loaded(source, Duplicate)
		return false
	}

	if err := l.reg.Register(def); err != nil {
		if stderrors.Is(err, tooltip.ErrTargetNotFound) {
			l.opts.Logger.Warn("target element not found",
				"id", def.ID,
				"target", def.Target)
			l.opts.Stats.Loaded(source, Unresolved)
			return false
		}
		l.opts.Logger.Error("tooltip registration failed", "id", def.ID, "error", err)
		l.opts.Stats.Loaded(source, Malformed)
		return false
	}
	l.opts.Stats.Loaded(source, Registered)
	return true
}
