package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/touchbridge/input"
	"github.com/Alia5/touchbridge/input/evdev"
	"github.com/Alia5/touchbridge/internal/log"
	"github.com/Alia5/touchbridge/touch"
)

// DefaultVirtualTouchscreen is the device node created by the virtual_touchscreen kernel module.
const DefaultVirtualTouchscreen = "/dev/virtual_touchscreen"

// Translate is the run command.
type Translate struct {
	AbsXMax            uint32 `name:"abs-x-max" short:"x" help:"Max value of the touchscreen ABS_X axis" required:"" env:"TOUCHBRIDGE_ABS_X_MAX"`
	AbsYMax            uint32 `name:"abs-y-max" short:"y" help:"Max value of the touchscreen ABS_Y axis" required:"" env:"TOUCHBRIDGE_ABS_Y_MAX"`
	InputDevice        string `name:"input-device" short:"i" help:"Pointer evdev node to read (e.g. /dev/input/event3)" required:"" env:"TOUCHBRIDGE_INPUT_DEVICE"`
	VirtualTouchscreen string `name:"virtual-touchscreen" short:"o" help:"virtual_touchscreen device to write to" default:"/dev/virtual_touchscreen" env:"TOUCHBRIDGE_VIRTUAL_TOUCHSCREEN"`
	Debug              bool   `name:"debug" short:"d" help:"Log every touchscreen command sent"`
	Grab               bool   `name:"grab" help:"Grab the input device exclusively so the pointer stops moving the cursor"`
}

type eventSource interface {
	input.Source
	io.Closer
}

// Run is called by Kong when the run command is executed.
func (t *Translate) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return t.Start(ctx, logger, rawLogger)
}

// Start opens both devices and translates until ctx is cancelled or an I/O error occurs.
func (t *Translate) Start(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	src, err := evdev.Open(t.InputDevice, t.Grab, rawLogger)
	if err != nil {
		return err
	}
	defer src.Close()

	sink, err := os.OpenFile(t.VirtualTouchscreen, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open virtual touchscreen %s: %w", t.VirtualTouchscreen, err)
	}
	defer sink.Close()

	return t.translate(ctx, src, sink, logger, rawLogger)
}

func (t *Translate) translate(ctx context.Context, src eventSource, sink io.Writer, logger *slog.Logger, rawLogger log.RawLogger) error {
	bounds := touch.Bounds{MaxX: t.AbsXMax, MaxY: t.AbsYMax}
	enc := touch.NewEncoder(log.Writer(sink, rawLogger), logger, t.Debug)
	tr := touch.NewTranslator(bounds, enc)

	logger.Info("Translating pointer to touchscreen",
		"input", t.InputDevice,
		"output", t.VirtualTouchscreen,
		"maxX", bounds.MaxX,
		"maxY", bounds.MaxY,
		"trigger", input.TriggerButton)

	stopClose := context.AfterFunc(ctx, func() {
		_ = src.Close()
	})
	defer stopClose()

	if err := touch.Loop(ctx, src, tr); err != nil {
		return err
	}
	logger.Info("Shutting down", "position", tr.String(), "tracking", tr.Tracking())
	return nil
}
