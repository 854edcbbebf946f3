package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/pkg/position"
)

// Trigger is the interaction that opens and closes a tooltip.
type Trigger string

const (
	Hover Trigger = "hover"
	Click Trigger = "click"
	Focus Trigger = "focus"
)

// Valid reports whether t is a known trigger.
func (t Trigger) Valid() bool {
	switch t {
	case Hover, Click, Focus:
		return true
	}
	return false
}

// Defaults applied to fields missing from a definition block.
const (
	DefaultPlacement = position.Top
	DefaultTrigger   = Hover
	DefaultOffset    = 10
	DefaultAnimation = "fade"
	SizeAuto         = "auto"
)

// Sentinels for errors.Is.
var (
	// ErrMalformed matches payloads that are not a JSON object.
	ErrMalformed error = errors.New("T001")
	// ErrInvalid matches definitions with a missing or out-of-range field.
	ErrInvalid error = errors.New("T002")
)

// Definition declares one tooltip. It is immutable once parsed.
type Definition struct {
	ID          string             `json:"id"`
	Target      string             `json:"target"`
	Content     string             `json:"content"`
	Placement   position.Placement `json:"placement"`
	Trigger     Trigger            `json:"trigger"`
	Delay       int                `json:"delay"`
	Offset      int                `json:"offset"`
	Animation   string             `json:"animation"`
	Size        string             `json:"size"`
	Width       string             `json:"width,omitempty"`
	MaxWidth    string             `json:"maxWidth,omitempty"`
	Interactive bool               `json:"interactive"`
	CustomStyle string             `json:"customStyle,omitempty"`
}

// Parse decodes and validates one definition block. Missing optional
// fields get their defaults.
func Parse(data []byte) (Definition, error) {
	var def Definition
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return def, errors.New("T001").
			WithDetail("The definition block must contain a JSON object.")
	}
	if err := json.Unmarshal(trimmed, &def); err != nil {
		return def, errors.New("T001").Wrap(err)
	}
	def.applyDefaults()
	if err := def.Validate(); err != nil {
		return def, err
	}
	return def, nil
}

// ParseString is Parse for text content.
func ParseString(s string) (Definition, error) {
	return Parse([]byte(s))
}

// WithDefaults returns d with every missing field set to its default, as
// Parse does for definition blocks.
func WithDefaults(d Definition) Definition {
	d.applyDefaults()
	return d
}

// applyDefaults fills in default values for empty fields. An explicit
// offset of 0 also resolves to DefaultOffset.
func (d *Definition) applyDefaults() {
	d.ID = strings.TrimSpace(d.ID)
	d.Target = strings.TrimSpace(d.Target)
	if d.Placement == "" {
		d.Placement = DefaultPlacement
	}
	if d.Trigger == "" {
		d.Trigger = DefaultTrigger
	}
	if d.Offset == 0 {
		d.Offset = DefaultOffset
	}
	if d.Animation == "" {
		d.Animation = DefaultAnimation
	}
	if d.Size == "" {
		d.Size = SizeAuto
	}
}

// Validate checks required fields and enums.
func (d Definition) Validate() error {
	invalid := func(format string, args ...any) error {
		return errors.New("T002").
			WithSubject(d.ID).
			Wrap(fmt.Errorf(format, args...))
	}
	switch {
	case d.ID == "":
		return invalid("id is required")
	case d.Target == "":
		return invalid("target is required")
	case !d.Placement.Valid():
		return invalid("placement %q is not one of top, bottom, left, right", d.Placement)
	case !d.Trigger.Valid():
		return invalid("trigger %q is not one of hover, click, focus", d.Trigger)
	case d.Delay < 0:
		return invalid("delay %d is negative", d.Delay)
	}
	return nil
}

// DelayDuration returns the show/hide delay.
func (d Definition) DelayDuration() time.Duration {
	return time.Duration(d.Delay) * time.Millisecond
}

// HasSizeClass reports whether the size adds a class to the tooltip.
func (d Definition) HasSizeClass() bool {
	return d.Size != "" && d.Size != SizeAuto
}
