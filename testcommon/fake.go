package testcommon

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// FakeSerialPort is a stand in for a colorimeter serial link. Every data
// request command written queues the next entry of ResponseData for reading.
type FakeSerialPort struct {
	ResponseData []string
	WriteErr     error

	Commands []string
	Closed   bool

	pending bytes.Buffer
}

func NewFakeSerialPort(responses ...string) *FakeSerialPort {
	return &FakeSerialPort{ResponseData: responses}
}

func (fsp *FakeSerialPort) Write(p []byte) (int, error) {
	if fsp.WriteErr != nil {
		return 0, fsp.WriteErr
	}
	cmd := strings.TrimRight(string(p), "\r\n")
	fsp.Commands = append(fsp.Commands, cmd)

	if strings.HasPrefix(cmd, "MDA") {
		if len(fsp.ResponseData) == 0 {
			return 0, fmt.Errorf("No more data")
		}
		fsp.pending.WriteString(fsp.ResponseData[0])
		fsp.ResponseData = fsp.ResponseData[1:]
	}
	return len(p), nil
}

func (fsp *FakeSerialPort) Read(p []byte) (int, error) {
	if fsp.pending.Len() == 0 {
		return 0, io.EOF
	}
	return fsp.pending.Read(p)
}

func (fsp *FakeSerialPort) Close() error {
	fsp.Closed = true
	return nil
}
