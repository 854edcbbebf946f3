// Package report runs a page's tooltip definitions headlessly and
// describes what happened to each block. The validate command prints
// reports and the preview server serves them as JSON.
package report

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/vango-dev/tooltips"
	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/dom/htmldom"
	"github.com/vango-dev/tooltips/pkg/sched"
	"github.com/vango-dev/tooltips/pkg/tooltip"
)

// Status is the outcome for one definition block.
type Status string

const (
	StatusOK         Status = "ok"
	StatusMalformed  Status = "malformed"
	StatusUnresolved Status = "unresolved"
	StatusDuplicate  Status = "duplicate"
)

// Entry describes one definition block in document order.
type Entry struct {
	Index       int    `json:"index"`
	ID          string `json:"id,omitempty"`
	Target      string `json:"target,omitempty"`
	Trigger     string `json:"trigger,omitempty"`
	Placement   string `json:"placement,omitempty"`
	Interactive bool   `json:"interactive,omitempty"`
	Status      Status `json:"status"`

	// Code and Error are set when Status is not ok.
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`

	// Warnings are style lint findings. They do not fail the report.
	Warnings []string `json:"warnings,omitempty"`

	err error
}

// Err returns the entry's error, if any.
func (e Entry) Err() error { return e.err }

// Report is the result of Build.
type Report struct {
	Version    string  `json:"version"`
	RootID     string  `json:"rootId"`
	RootFound  bool    `json:"rootFound"`
	Registered int     `json:"registered"`
	Entries    []Entry `json:"entries"`
}

// Build parses page and registers its definitions the way a System would,
// against a virtual clock so that no timer ever fires.
func Build(page io.Reader, cfg tooltips.Config) (*Report, error) {
	doc, err := htmldom.Parse(page)
	if err != nil {
		return nil, errors.New("T040").Wrap(err)
	}
	def := tooltips.DefaultConfig()
	if cfg.RootID == "" {
		cfg.RootID = def.RootID
	}
	if cfg.DefinitionClass == "" {
		cfg.DefinitionClass = def.DefinitionClass
	}

	r := &Report{Version: tooltips.Version, RootID: cfg.RootID}
	root := doc.GetElementByID(cfg.RootID)
	r.RootFound = root != nil
	if root == nil {
		// Still check the definitions, against a detached container.
		root = doc.CreateElement("div")
	}

	reg := tooltip.NewRegistry(doc, root, sched.NewManual(), tooltip.Options{
		ClassPrefix: cfg.ClassPrefix,
		GracePeriod: cfg.GracePeriod,
		Logger:      slog.New(slog.DiscardHandler),
	})

	for i, block := range doc.QuerySelectorAll("script." + cfg.DefinitionClass) {
		e := Entry{Index: i}
		d, err := definition.ParseString(block.TextContent())
		if err != nil {
			e.fail(StatusMalformed, err)
			e.ID = d.ID
			r.Entries = append(r.Entries, e)
			continue
		}
		e.ID = d.ID
		e.Target = d.Target
		e.Trigger = string(d.Trigger)
		e.Placement = string(d.Placement)
		e.Interactive = d.Interactive
		for _, w := range definition.LintStyle(d.CustomStyle) {
			e.Warnings = append(e.Warnings, w.Error())
		}

		if _, dup := reg.Get(d.ID); dup {
			e.fail(StatusDuplicate, errors.New("T011").WithSubject(d.ID))
		} else if err := reg.Register(d); err != nil {
			e.fail(StatusUnresolved, err)
		} else {
			e.Status = StatusOK
			r.Registered++
		}
		r.Entries = append(r.Entries, e)
	}
	return r, nil
}

func (e *Entry) fail(s Status, err error) {
	e.Status = s
	e.err = err
	e.Code = errors.CodeOf(err)
	e.Error = err.Error()
}

// Failed returns the entries that would be skipped at runtime. Duplicates
// are not failures.
func (r *Report) Failed() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Status == StatusMalformed || e.Status == StatusUnresolved {
			out = append(out, e)
		}
	}
	return out
}

// Err returns nil when every definition would load. A missing root
// container takes precedence over definition failures.
func (r *Report) Err() error {
	if !r.RootFound {
		return errors.New("T020").WithSubject(r.RootID)
	}
	if n := len(r.Failed()); n > 0 {
		return errors.New("T041").WithDetail(pluralize(n, "definition", "definitions") + " would be skipped.")
	}
	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
