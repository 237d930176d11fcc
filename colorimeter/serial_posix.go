//go:build !windows

package colorimeter

import (
	"io"
	"time"

	"github.com/pkg/term"
)

// Open opens a serial port configured for the CA-410: 115200 baud, raw mode,
// one second read timeout.
func Open(port string) (io.ReadWriteCloser, error) {
	t, err := term.Open(port, term.Speed(BAUD_RATE), term.RawMode)
	if err != nil {
		return nil, err
	}
	if err := t.SetReadTimeout(time.Second); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}
