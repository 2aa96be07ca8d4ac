package picker

import (
	"go.uber.org/zap"

	"colorpicker/logger"
)

// EventType defines the kind of event emitted by a picker.
type EventType int

const (
	EventColorChanged EventType = iota
	EventDragStart
	EventDragEnd
)

func (t EventType) String() string {
	switch t {
	case EventColorChanged:
		return "color-changed"
	case EventDragStart:
		return "drag-start"
	case EventDragEnd:
		return "drag-end"
	default:
		return "unknown"
	}
}

// Event signals that something happened. It carries no color; observers
// re-read the picker state.
type Event struct {
	Type EventType
}

// EventHandler provides both channel and callback based event delivery.
type EventHandler struct {
	Events chan Event
	Handle func(Event)
}

// Emit delivers the event through the channel and callback if present. If the
// channel is full the event is dropped and logged rather than blocking.
func (h *EventHandler) Emit(ev Event) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
			logger.Log.Warn("event channel full, dropping event", zap.Stringer("type", ev.Type))
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

// NewHandler returns a handler with a buffered channel.
func NewHandler() *EventHandler {
	return &EventHandler{Events: make(chan Event, 64)}
}
