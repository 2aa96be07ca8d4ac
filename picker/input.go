package picker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"colorpicker/hsb"
)

var (
	ErrNotNumber  = errors.New("not a number")
	ErrNotInteger = errors.New("not a whole number")
	ErrOutOfRange = errors.New("out of range")
)

// Field names one of the editable inputs.
type Field int

const (
	FieldNone Field = iota
	FieldH
	FieldS
	FieldB
	FieldR
	FieldG
	FieldBlue
	FieldHex
)

type fieldInfo struct {
	key, title string
	min, max   int
}

var fields = map[Field]fieldInfo{
	FieldH:    {"h", "hue", 0, 360},
	FieldS:    {"s", "saturation", 0, 100},
	FieldB:    {"b", "brightness", 0, 100},
	FieldR:    {"r", "red", 0, 255},
	FieldG:    {"g", "green", 0, 255},
	FieldBlue: {"b", "blue", 0, 255},
	FieldHex:  {"hex", "hexadecimal", 0, 0},
}

// HSBFields and RGBFields list the numeric inputs in display order.
var (
	HSBFields = []Field{FieldH, FieldS, FieldB}
	RGBFields = []Field{FieldR, FieldG, FieldBlue}
)

// Key is the short label of the field.
func (f Field) Key() string { return fields[f].key }

// Title is the lowercase long name of the field.
func (f Field) Title() string { return fields[f].title }

// Range returns the inclusive bounds of a numeric field.
func (f Field) Range() (int, int) { return fields[f].min, fields[f].max }

// IsHSB reports whether f edits the HSB group.
func (f Field) IsHSB() bool { return f == FieldH || f == FieldS || f == FieldB }

// IsRGB reports whether f edits the RGB group.
func (f Field) IsRGB() bool { return f == FieldR || f == FieldG || f == FieldBlue }

func (f Field) String() string {
	if f == FieldNone {
		return "none"
	}
	return f.Title()
}

// Validate applies the rules of a numeric input with step 1: the text must
// be a number, whole, and within the field's range.
func Validate(f Field, text string) (int, error) {
	text = strings.TrimSpace(text)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: %w", f, text, ErrNotNumber)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s %q: %w", f, text, ErrNotInteger)
	}
	lo, hi := f.Range()
	if v < float64(lo) || v > float64(hi) {
		return 0, fmt.Errorf("%s %v not in [%d,%d]: %w", f, v, lo, hi, ErrOutOfRange)
	}
	return int(v), nil
}

// Input normalizes field edits into HSB updates. RGB and hex edits are
// converted to HSB first, never written into the state directly.
type Input struct {
	state *State
}

// NewInput returns an adapter feeding s.
func NewInput(s *State) *Input { return &Input{state: s} }

// State returns the wrapped state.
func (in *Input) State() *State { return in.state }

// SetHSB handles an edit of one HSB field. Invalid text re-renders the last
// good color. It reports whether the color was updated.
func (in *Input) SetHSB(f Field, text string) bool {
	if !f.IsHSB() {
		return false
	}
	in.state.keep = f
	v, err := Validate(f, text)
	if err != nil {
		in.state.log.Debug("rejected field", zap.Error(err))
		in.state.Refresh()
		return false
	}
	var p hsb.Partial
	switch f {
	case FieldH:
		p = p.WithH(float64(v))
	case FieldS:
		p = p.WithS(float64(v))
	case FieldB:
		p = p.WithB(float64(v))
	}
	return in.state.Update(p)
}

// SetRGB handles an edit of any RGB field. The whole triple is re-read and
// converted, since the channels only make sense together. edited names the
// field being typed into.
func (in *Input) SetRGB(edited Field, r, g, b string) bool {
	in.state.keep = edited
	vals := make(map[string]int, 3)
	for _, ch := range []struct {
		f    Field
		key  string
		text string
	}{{FieldR, "r", r}, {FieldG, "g", g}, {FieldBlue, "b", b}} {
		v, err := Validate(ch.f, ch.text)
		if err != nil {
			in.state.log.Debug("rejected field", zap.Error(err))
			in.state.Refresh()
			return false
		}
		vals[ch.key] = v
	}
	return in.state.Update(hsb.PartialFromRGB(vals))
}

// SetHex handles an edit of the hex field. Text shorter than six digits is
// ignored until complete; bad digits re-render the last good color.
func (in *Input) SetHex(text string) bool {
	c, err := hsb.HexToHSB(text)
	if errors.Is(err, hsb.ErrShortHex) {
		return false
	}
	in.state.keep = FieldHex
	if err != nil {
		in.state.log.Debug("rejected hex", zap.Error(err))
		in.state.Refresh()
		return false
	}
	return in.state.Update(hsb.FromHSB(c))
}

// Set dispatches an edit of a single field. RGB fields need the other two
// channels, taken from the current color.
func (in *Input) Set(f Field, text string) bool {
	switch {
	case f.IsHSB():
		return in.SetHSB(f, text)
	case f.IsRGB():
		c := in.state.Color().RGB
		r, g, b := strconv.Itoa(c.R), strconv.Itoa(c.G), strconv.Itoa(c.B)
		switch f {
		case FieldR:
			r = text
		case FieldG:
			g = text
		case FieldBlue:
			b = text
		}
		return in.SetRGB(f, r, g, b)
	case f == FieldHex:
		return in.SetHex(text)
	}
	return false
}
