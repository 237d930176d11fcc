//go:build windows

package colorimeter

import (
	"errors"
	"io"
)

func Open(port string) (io.ReadWriteCloser, error) {
	return nil, errors.New("serial colorimeter access is not supported on windows")
}
