package touch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

// Op is a single-letter virtual_touchscreen command.
type Op byte

const (
	OpSlot        Op = 's'
	OpTrackingID  Op = 'T'
	OpMTPositionX Op = 'X'
	OpMTPositionY Op = 'Y'
	OpTouch       Op = 'd'
	OpToolFinger  Op = 'a'
	OpPositionX   Op = 'x'
	OpPositionY   Op = 'y'
	OpSync        Op = 'S'
)

// EventName returns the kernel event the driver injects for op.
func (o Op) EventName() string {
	switch o {
	case OpSlot:
		return "ABS_MT_SLOT"
	case OpTrackingID:
		return "ABS_MT_TRACKING_ID"
	case OpMTPositionX:
		return "ABS_MT_POSITION_X"
	case OpMTPositionY:
		return "ABS_MT_POSITION_Y"
	case OpTouch:
		return "BTN_TOUCH"
	case OpToolFinger:
		return "BTN_TOOL_FINGER"
	case OpPositionX:
		return "ABS_X"
	case OpPositionY:
		return "ABS_Y"
	case OpSync:
		return "SYN_REPORT"
	default:
		return "UNKNOWN"
	}
}

// Command is one protocol line: "<op> <value>\n".
type Command struct {
	Op    Op
	Value int64
}

// AppendTo appends the encoded line to b.
func (c Command) AppendTo(b []byte) []byte {
	b = append(b, byte(c.Op), ' ')
	b = strconv.AppendInt(b, c.Value, 10)
	return append(b, '\n')
}

func (c Command) String() string {
	return string(c.Op) + " " + strconv.FormatInt(c.Value, 10)
}

// Encoder serializes command groups onto the virtual touchscreen device.
// The sink is write-only; nothing is ever read back.
type Encoder struct {
	w      io.Writer
	logger *slog.Logger
	mirror bool
	buf    []byte
}

// NewEncoder returns an Encoder writing to w. When mirror is set every command
// is also logged at debug level.
func NewEncoder(w io.Writer, logger *slog.Logger, mirror bool) *Encoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Encoder{
		w:      w,
		logger: logger,
		mirror: mirror,
		buf:    make([]byte, 0, 128),
	}
}

// Send writes cmds as a single buffer, preserving their order.
func (e *Encoder) Send(cmds ...Command) error {
	if len(cmds) == 0 {
		return nil
	}
	e.buf = e.buf[:0]
	for _, c := range cmds {
		e.buf = c.AppendTo(e.buf)
	}
	if e.mirror && e.logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, c := range cmds {
			e.logger.Debug("send "+c.Op.EventName(), "value", c.Value)
		}
	}
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("write touchscreen commands: %w", err)
	}
	return nil
}
