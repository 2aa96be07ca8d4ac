package picker

import (
	"errors"
	"testing"

	"colorpicker/hsb"
)

func TestDragPlane(t *testing.T) {
	s, sink, events := newTestState(t, WithInitial(hsb.HSB{H: 120, S: 0, B: 100}))
	d := NewDrag(s)

	if d.Active() {
		t.Fatalf("new drag is active")
	}
	if err := d.Begin(TargetPlane, 100, 75); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if !d.Active() || d.Target() != TargetPlane {
		t.Fatalf("drag not started")
	}
	if got := s.Color().HSB; got != (hsb.HSB{H: 120, S: 50, B: 50}) {
		t.Fatalf("after begin %+v", got)
	}

	if err := d.Move(300, -10); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := s.Color().HSB; got != (hsb.HSB{H: 120, S: 100, B: 100}) {
		t.Fatalf("out-of-box move should clamp, got %+v", got)
	}

	d.End()
	if d.Active() {
		t.Fatalf("drag still active after end")
	}
	if err := d.Move(0, 150); err != nil {
		t.Fatalf("idle move: %v", err)
	}
	if got := s.Color().HSB; got != (hsb.HSB{H: 120, S: 100, B: 100}) {
		t.Fatalf("idle move changed color to %+v", got)
	}

	want := []EventType{EventDragStart, EventColorChanged, EventColorChanged, EventDragEnd}
	if len(*events) != len(want) {
		t.Fatalf("events %v", *events)
	}
	for i, ev := range *events {
		if ev.Type != want[i] {
			t.Fatalf("event %d = %v, want %v", i, ev.Type, want[i])
		}
	}
	if len(sink.frames) != 2 {
		t.Fatalf("expected one frame per update, got %d", len(sink.frames))
	}
}

func TestDragHueOnlyTouchesHue(t *testing.T) {
	s, sink, _ := newTestState(t, WithInitial(hsb.HSB{H: 0, S: 40, B: 60}))
	d := NewDrag(s)
	if err := d.Begin(TargetHue, 100, 999); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if got := s.Color().HSB; got != (hsb.HSB{H: 180, S: 40, B: 60}) {
		t.Fatalf("got %+v", got)
	}
	if err := d.Move(-50, 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := s.Color().HSB.H; got != 0 {
		t.Fatalf("hue %d", got)
	}
	if x := sink.last().HueHandleX; x != hsb.HandleInset {
		t.Fatalf("handle at %v", x)
	}
}

func TestDragRightEdgeIsFullHue(t *testing.T) {
	s, _, _ := newTestState(t)
	d := NewDrag(s)
	d.Begin(TargetHue, 250, 0)
	if got := s.Color().HSB.H; got != 360 {
		t.Fatalf("hue %d", got)
	}
	if got := s.Color().Hex; got != "FFFFFF" {
		t.Fatalf("hex %q", got)
	}
}

func TestDragRejectsDegenerateGeometry(t *testing.T) {
	s, sink, events := newTestState(t)
	sink.plane = hsb.Geometry{Width: 0, Height: 150}
	d := NewDrag(s)
	if err := d.Begin(TargetPlane, 1, 1); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("err = %v", err)
	}
	if d.Active() || len(*events) != 0 {
		t.Fatalf("degenerate drag started")
	}
	if err := NewDrag(New()).Begin(TargetHue, 0, 0); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("no sink: %v", err)
	}
}

func TestBeginWhileDraggingEndsFirst(t *testing.T) {
	s, _, events := newTestState(t)
	d := NewDrag(s)
	d.Begin(TargetHue, 10, 0)
	d.Begin(TargetPlane, 10, 10)
	if d.Target() != TargetPlane {
		t.Fatalf("target %v", d.Target())
	}
	if countType(*events, EventDragEnd) != 1 || countType(*events, EventDragStart) != 2 {
		t.Fatalf("events %v", *events)
	}
}

func TestBeginNoneIsNoop(t *testing.T) {
	s, sink, _ := newTestState(t)
	d := NewDrag(s)
	if err := d.Begin(TargetNone, 1, 1); err != nil || d.Active() || len(sink.frames) != 0 {
		t.Fatalf("none target did something")
	}
	d.End()
}

func TestNudge(t *testing.T) {
	s, _, events := newTestState(t, WithInitial(hsb.HSB{H: 358, S: 100, B: 100}))
	d := NewDrag(s)
	if !d.Nudge(5) || s.Color().HSB.H != 360 {
		t.Fatalf("hue %d", s.Color().HSB.H)
	}
	if d.Nudge(1) {
		t.Fatalf("nudge past 360 reported a change")
	}
	if d.Nudge(0) {
		t.Fatalf("zero nudge reported a change")
	}
	if !d.Nudge(-400) || s.Color().HSB.H != 0 {
		t.Fatalf("hue %d", s.Color().HSB.H)
	}
	if countType(*events, EventColorChanged) != 2 {
		t.Fatalf("events %v", *events)
	}
}
