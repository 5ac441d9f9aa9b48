// Package touch translates relative pointer motion and a trigger button into
// single-finger virtual_touchscreen commands.
package touch

import (
	"context"

	"github.com/Alia5/touchbridge/input"
)

// Translator owns the position, the contact state and the encoder.
// It is not safe for concurrent use; a single loop drives it.
type Translator struct {
	acc     *Accumulator
	contact ContactStateMachine
	enc     *Encoder
}

// NewTranslator returns a Translator at (0,0) with no active contact.
func NewTranslator(b Bounds, enc *Encoder) *Translator {
	return &Translator{
		acc: NewAccumulator(b),
		enc: enc,
	}
}

// Position returns the current absolute position.
func (t *Translator) Position() Position {
	return t.acc.Position()
}

// Tracking reports whether a contact is active.
func (t *Translator) Tracking() bool {
	return t.contact.Tracking()
}

func (t *Translator) String() string {
	return t.acc.Position().String()
}

// Handle applies a single input event. Motion only moves the position; the
// trigger button begins or ends the contact. Anything else is ignored.
func (t *Translator) Handle(ev input.Event) error {
	switch ev.Kind {
	case input.KindRelativeMotion:
		switch ev.Axis {
		case input.AxisX:
			t.acc.ApplyDeltaX(ev.Value)
		case input.AxisY:
			t.acc.ApplyDeltaY(ev.Value)
		}
	case input.KindKey:
		if ev.Code != input.TriggerButton {
			return nil
		}
		switch ev.Value {
		case input.KeyPressed:
			return t.enc.Send(t.contact.Begin(t.acc.Position())...)
		case input.KeyReleased:
			return t.enc.Send(t.contact.End()...)
		}
	}
	return nil
}

// Resync re-emits the current position and a sync while a contact is active.
func (t *Translator) Resync() error {
	return t.enc.Send(t.contact.Refresh(t.acc.Position())...)
}

// Step handles one batch and then resyncs once.
func (t *Translator) Step(batch []input.Event) error {
	for _, ev := range batch {
		if err := t.Handle(ev); err != nil {
			return err
		}
	}
	return t.Resync()
}

// Loop reads batches from src until an error occurs or ctx is cancelled.
// Cancellation only takes effect between batches, so callers should also
// close src to unblock a pending read.
func Loop(ctx context.Context, src input.Source, t *Translator) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		batch, err := src.ReadBatch()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := t.Step(batch); err != nil {
			return err
		}
	}
}
