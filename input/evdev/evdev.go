// Package evdev reads Linux evdev character devices (/dev/input/event*) and
// decodes the kernel's input_event records into input.Event batches.
package evdev

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/Alia5/touchbridge/input"
	"github.com/Alia5/touchbridge/internal/log"

	"golang.org/x/sys/unix"
)

// RecordSize is the size of struct input_event on this platform:
// a struct timeval followed by type (u16), code (u16) and value (s32).
var RecordSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

// batchRecords bounds how many records a single read may return.
const batchRecords = 64

// ioctl request encoding (Linux _IOC macro).
const (
	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	iocWrite = 1
)

func ioc(dir, typ, nr, size uint32) uint {
	return uint(dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift)
}

// EVIOCGRAB = _IOW('E', 0x90, int)
var eviocgrab = ioc(iocWrite, 'E', 0x90, uint32(unsafe.Sizeof(int32(0))))

// Device is an input.Source backed by an evdev node.
type Device struct {
	r       io.Reader
	c       io.Closer
	raw     log.RawLogger
	buf     []byte
	pending []byte
}

var _ input.Source = (*Device)(nil)

// Open opens the evdev node at path for reading. If grab is set the device is
// grabbed exclusively so its events no longer reach other consumers.
func Open(path string, grab bool, raw log.RawLogger) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}
	if grab {
		if err := setGrab(f, 1); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("grab input device %s: %w", path, err)
		}
	}
	return New(f, raw), nil
}

// New wraps an already opened event stream. If r is an io.Closer it is closed
// by Close.
func New(r io.Reader, raw log.RawLogger) *Device {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	d := &Device{
		r:   r,
		raw: raw,
		buf: make([]byte, RecordSize*batchRecords),
	}
	if c, ok := r.(io.Closer); ok {
		d.c = c
	}
	return d
}

func setGrab(f *os.File, on int) error {
	rc, err := f.SyscallConn()
	if err != nil {
		return err
	}
	var ioErr error
	if err := rc.Control(func(fd uintptr) {
		ioErr = unix.IoctlSetInt(int(fd), eviocgrab, on)
	}); err != nil {
		return err
	}
	return ioErr
}

// ReadBatch blocks until at least one complete record has been read and
// returns every complete record from that read.
func (d *Device) ReadBatch() ([]input.Event, error) {
	for {
		n, err := d.r.Read(d.buf)
		if n > 0 {
			d.raw.Log(true, d.buf[:n])
			d.pending = append(d.pending, d.buf[:n]...)
		}
		if events := d.drain(); len(events) > 0 {
			return events, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read input events: %w", io.ErrUnexpectedEOF)
			}
			return nil, fmt.Errorf("read input events: %w", err)
		}
	}
}

func (d *Device) drain() []input.Event {
	count := len(d.pending) / RecordSize
	if count == 0 {
		return nil
	}
	events := make([]input.Event, 0, count)
	for i := 0; i < count; i++ {
		events = append(events, Decode(d.pending[i*RecordSize:(i+1)*RecordSize]))
	}
	rest := copy(d.pending, d.pending[count*RecordSize:])
	d.pending = d.pending[:rest]
	return events
}

// Decode decodes a single input_event record of RecordSize bytes.
// The timestamp is ignored.
func Decode(rec []byte) input.Event {
	off := RecordSize - 8
	typ := binary.NativeEndian.Uint16(rec[off : off+2])
	code := binary.NativeEndian.Uint16(rec[off+2 : off+4])
	value := int32(binary.NativeEndian.Uint32(rec[off+4 : off+8]))
	return input.FromRaw(typ, code, value)
}

// Encode writes a record with a zero timestamp. Used to build synthetic streams.
func Encode(typ, code uint16, value int32) []byte {
	rec := make([]byte, RecordSize)
	off := RecordSize - 8
	binary.NativeEndian.PutUint16(rec[off:off+2], typ)
	binary.NativeEndian.PutUint16(rec[off+2:off+4], code)
	binary.NativeEndian.PutUint32(rec[off+4:off+8], uint32(value))
	return rec
}

// Close releases the device, unblocking a pending ReadBatch.
func (d *Device) Close() error {
	if d.c == nil {
		return nil
	}
	return d.c.Close()
}
