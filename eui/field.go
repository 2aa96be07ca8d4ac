package eui

import (
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"colorpicker/hsb"
	"colorpicker/picker"
)

const (
	maxNumericChars = 5
	maxHexChars     = 7
)

// field is one editable text box.
type field struct {
	id      picker.Field
	text    string
	invalid bool
}

func newFields() []*field {
	ids := append(append(append([]picker.Field{}, picker.HSBFields...), picker.RGBFields...), picker.FieldHex)
	out := make([]*field, len(ids))
	for i, id := range ids {
		out[i] = &field{id: id}
	}
	return out
}

func (f *field) label() string {
	if f.id == picker.FieldHex {
		return "#"
	}
	return upperCaser.String(f.id.Key())
}

func (f *field) validate() error {
	if f.id == picker.FieldHex {
		_, err := hsb.ParseHex(f.text)
		return err
	}
	_, err := picker.Validate(f.id, f.text)
	return err
}

// accept appends r to the field text if the field allows it.
func (f *field) accept(r rune) bool {
	if f.id == picker.FieldHex {
		if len(f.text) >= maxHexChars {
			return false
		}
		switch {
		case r == '#' && f.text == "":
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			r = []rune(upperCaser.String(string(r)))[0]
		default:
			return false
		}
		f.text += string(r)
		return true
	}
	if len(f.text) >= maxNumericChars {
		return false
	}
	if (r < '0' || r > '9') && r != '-' && r != '.' {
		return false
	}
	f.text += string(r)
	return true
}

func (f *field) backspace() bool {
	if f.text == "" {
		return false
	}
	runes := []rune(f.text)
	f.text = string(runes[:len(runes)-1])
	return true
}

func fieldText(c picker.Snapshot, id picker.Field) string {
	switch id {
	case picker.FieldH:
		return strconv.Itoa(c.HSB.H)
	case picker.FieldS:
		return strconv.Itoa(c.HSB.S)
	case picker.FieldB:
		return strconv.Itoa(c.HSB.B)
	case picker.FieldR:
		return strconv.Itoa(c.RGB.R)
	case picker.FieldG:
		return strconv.Itoa(c.RGB.G)
	case picker.FieldBlue:
		return strconv.Itoa(c.RGB.B)
	case picker.FieldHex:
		return c.Hex
	}
	return ""
}

func (p *Picker) fieldByID(id picker.Field) *field {
	for _, f := range p.fields {
		if f.id == id {
			return f
		}
	}
	return nil
}

// commit hands the focused field's text to the input adapter.
func (p *Picker) commit(f *field) {
	if f.id.IsRGB() {
		text := func(id picker.Field) string { return p.fieldByID(id).text }
		p.input.SetRGB(f.id, text(picker.FieldR), text(picker.FieldG), text(picker.FieldBlue))
		return
	}
	if f.id == picker.FieldHex {
		p.input.SetHex(strings.TrimSpace(f.text))
		return
	}
	p.input.Set(f.id, f.text)
}

func (p *Picker) focus(f *field) {
	if p.focused == f {
		return
	}
	p.blur()
	p.focused = f
}

// blur drops focus. The state is refreshed so the field shows the last good
// value again.
func (p *Picker) blur() {
	if p.focused == nil {
		return
	}
	p.focused = nil
	p.state.Refresh()
}

func (p *Picker) focusNext(step int) {
	i := 0
	for j, f := range p.fields {
		if f == p.focused {
			i = j + step
			break
		}
	}
	i = ((i % len(p.fields)) + len(p.fields)) % len(p.fields)
	p.blur()
	p.focused = p.fields[i]
}

func (p *Picker) updateKeys() {
	f := p.focused
	if f == nil {
		return
	}
	changed := false
	p.inputBuf = ebiten.AppendInputChars(p.inputBuf[:0])
	for _, r := range p.inputBuf {
		if f.accept(r) {
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		changed = f.backspace() || changed
	} else if d := inpututil.KeyPressDuration(ebiten.KeyBackspace); d > 30 && d%3 == 0 {
		changed = f.backspace() || changed
	}
	if changed {
		p.commit(f)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		p.focusNext(step)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.blur()
	}
}
