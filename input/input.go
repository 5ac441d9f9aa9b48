// Package input defines the typed event stream consumed by the touch translator.
package input

import "fmt"

// Linux input event types (linux/input-event-codes.h).
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02
	EvAbs uint16 = 0x03
)

// Relative axes.
const (
	RelX uint16 = 0x00
	RelY uint16 = 0x01
)

// Buttons.
const (
	BtnLeft  uint16 = 0x110 // 272
	BtnExtra uint16 = 0x114 // 276
)

// TriggerButton is the key code that starts and ends a touch contact.
const TriggerButton = BtnExtra

// Key values reported for EV_KEY.
const (
	KeyReleased int32 = 0
	KeyPressed  int32 = 1
	KeyRepeat   int32 = 2
)

// Kind classifies an Event.
type Kind uint8

const (
	KindOther Kind = iota
	KindRelativeMotion
	KindKey
)

// Axis of a relative motion event.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Event is a single decoded input event.
//
// For KindRelativeMotion, Axis and Value (the delta) are set.
// For KindKey, Code and Value (0 release, 1 press, 2 autorepeat) are set.
// Everything else is KindOther and carries the raw type and code.
type Event struct {
	Kind  Kind
	Axis  Axis
	Type  uint16
	Code  uint16
	Value int32
}

// Motion returns a relative motion event.
func Motion(axis Axis, delta int32) Event {
	code := RelX
	if axis == AxisY {
		code = RelY
	}
	return Event{Kind: KindRelativeMotion, Axis: axis, Type: EvRel, Code: code, Value: delta}
}

// Key returns a key event.
func Key(code uint16, value int32) Event {
	return Event{Kind: KindKey, Type: EvKey, Code: code, Value: value}
}

// FromRaw classifies a raw (type, code, value) triple as read from the kernel.
func FromRaw(typ, code uint16, value int32) Event {
	switch typ {
	case EvRel:
		switch code {
		case RelX:
			return Motion(AxisX, value)
		case RelY:
			return Motion(AxisY, value)
		}
	case EvKey:
		return Key(code, value)
	}
	return Event{Kind: KindOther, Type: typ, Code: code, Value: value}
}

func (e Event) String() string {
	switch e.Kind {
	case KindRelativeMotion:
		axis := "x"
		if e.Axis == AxisY {
			axis = "y"
		}
		return fmt.Sprintf("rel %s %+d", axis, e.Value)
	case KindKey:
		return fmt.Sprintf("key %d value %d", e.Code, e.Value)
	default:
		return fmt.Sprintf("type %d code %d value %d", e.Type, e.Code, e.Value)
	}
}

// Source produces batches of input events.
type Source interface {
	// ReadBatch blocks until at least one event is available or an error occurs.
	ReadBatch() ([]Event, error)
}
