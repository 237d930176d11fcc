// Package colorimeter talks to a Konica Minolta CA-410 over its serial link.
// The instrument is only used as a source of xyY readings.
package colorimeter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kpfaulkner/gamutcheck/color"
	log "github.com/sirupsen/logrus"
)

const (
	CMD_REMOTE_ON = "RMT 1\r"
	CMD_MEASURE   = "MES\r"
	CMD_READ_XYY  = "MDA 1\r"

	BAUD_RATE = 115200

	DEFAULT_SETTLE_DELAY = 500 * time.Millisecond

	maxResponseLength = 256
)

var (
	ErrNoResponse    = errors.New("no response from colorimeter")
	ErrShortResponse = errors.New("colorimeter response has fewer than 3 fields")
)

// Measurement is one CA-410 reading. CCT and Duv are only set when the
// instrument reported them.
type Measurement struct {
	X         float64
	Y         float64
	Luminance float64
	CCT       float64
	Duv       float64
	HasCCT    bool
}

// Reading validates the chromaticity and attaches it to channel.
func (m *Measurement) Reading(channel color.Channel) (color.Reading, error) {
	xy, err := color.NewValidCIEXY(channel, m.X, m.Y)
	if err != nil {
		return color.Reading{}, err
	}
	return color.Reading{Channel: channel, XY: xy, Luminance: m.Luminance}, nil
}

type CA410Option func(ca *CA410)

// WithSettleDelay sets the pause after each command before the next one.
func WithSettleDelay(d time.Duration) CA410Option {
	return func(ca *CA410) {
		ca.settle = d
	}
}

type CA410 struct {
	port   io.ReadWriter
	settle time.Duration
	remote bool
}

func NewCA410(port io.ReadWriter, opts ...CA410Option) *CA410 {
	ca := &CA410{
		port:   port,
		settle: DEFAULT_SETTLE_DELAY,
	}
	for _, opt := range opts {
		opt(ca)
	}
	return ca
}

// Measure triggers a measurement and returns the xyY result. Remote mode is
// enabled on first use.
func (ca *CA410) Measure() (*Measurement, error) {
	if !ca.remote {
		if err := ca.send(CMD_REMOTE_ON); err != nil {
			return nil, err
		}
		ca.remote = true
	}
	if err := ca.send(CMD_MEASURE); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(ca.port, CMD_READ_XYY); err != nil {
		return nil, fmt.Errorf("writing %q: %w", strings.TrimSpace(CMD_READ_XYY), err)
	}

	line, err := ca.readLine()
	if err != nil {
		return nil, err
	}
	log.Debugf("ca410 response %q", line)
	return ParseResponse(line)
}

func (ca *CA410) send(cmd string) error {
	if _, err := io.WriteString(ca.port, cmd); err != nil {
		return fmt.Errorf("writing %q: %w", strings.TrimSpace(cmd), err)
	}
	time.Sleep(ca.settle)
	return nil
}

// readLine reads up to the first CR or LF. A read returning no data ends the
// line, serial reads with a timeout return 0 bytes when nothing arrives.
func (ca *CA410) readLine() (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for sb.Len() < maxResponseLength {
		n, err := ca.port.Read(buf)
		if n == 1 {
			if buf[0] == '\r' || buf[0] == '\n' {
				if sb.Len() == 0 {
					continue
				}
				break
			}
			sb.WriteByte(buf[0])
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		break
	}

	line := strings.TrimSpace(sb.String())
	if line == "" {
		return "", ErrNoResponse
	}
	return line, nil
}

// ParseResponse parses the "Y,x,y,T,duv" data line. Only the first three
// fields are required.
func ParseResponse(line string) (*Measurement, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrShortResponse, line)
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			if i >= 3 {
				// T and duv are blank when out of range
				continue
			}
			return nil, fmt.Errorf("parsing field %d of %q: %w", i, line, err)
		}
		values[i] = v
	}

	m := &Measurement{
		Luminance: values[0],
		X:         values[1],
		Y:         values[2],
	}
	if len(fields) >= 5 {
		m.CCT = values[3]
		m.Duv = values[4]
		m.HasCCT = m.CCT != 0
	}
	return m, nil
}
