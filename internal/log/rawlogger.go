package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw input bytes with optional file output.
type RawLogger interface {
	Log(in bool, data []byte)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log emits a single-line hex dump of one read or write.
// in=true means bytes read from the input device, in=false bytes written to
// the touchscreen.
func (r *rawLogger) Log(in bool, data []byte) {
	if len(data) == 0 {
		return
	}
	if r.w == nil {
		return
	}

	dir := "out"
	if in {
		dir = "in "
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s %d bytes: %s\n",
		r.now().Format("2006/01/02 15:04:05.000"),
		dir,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}

type rawWriter struct {
	w   io.Writer
	raw RawLogger
}

// Writer wraps w so every successful write is also dumped as outgoing bytes.
func Writer(w io.Writer, raw RawLogger) io.Writer {
	if raw == nil {
		return w
	}
	return &rawWriter{w: w, raw: raw}
}

func (rw *rawWriter) Write(p []byte) (int, error) {
	n, err := rw.w.Write(p)
	if n > 0 {
		rw.raw.Log(false, p[:n])
	}
	return n, err
}
