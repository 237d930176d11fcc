// Package measurement reads and writes colorimeter measurement tables. A table
// is CSV with a header containing Color, x, y and Y columns, one row per
// channel.
package measurement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpfaulkner/gamutcheck/color"
)

const (
	COL_COLOR     = "Color"
	COL_X         = "x"
	COL_Y         = "y"
	COL_LUMINANCE = "Y"
)

var requiredColumns = []string{COL_COLOR, COL_X, COL_Y, COL_LUMINANCE}

var ErrMissingColumns = errors.New("CSV must contain columns Color, x, y, Y")

// ReadCSVFile opens filename and parses it with ReadCSV.
func ReadCSVFile(filename string) (*color.MeasurementSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ms, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ms, nil
}

// ReadCSV parses a measurement table. Column order is free and extra columns
// are ignored. Header names are matched case sensitively since x and Y differ
// only by case.
func ReadCSV(in io.Reader) (*color.MeasurementSet, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingColumns
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w, missing %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var readings []color.Reading
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(record) {
			continue
		}

		reading, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		readings = append(readings, reading)
	}

	return color.NewMeasurementSet(readings)
}

func parseRecord(record []string, index map[string]int) (color.Reading, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	channel, err := color.ParseChannel(field(COL_COLOR))
	if err != nil {
		return color.Reading{}, err
	}

	xy, err := color.ParseCIEXY(channel, field(COL_X), field(COL_Y))
	if err != nil {
		return color.Reading{}, err
	}

	// only the white row is needed for luminance, primaries may leave Y blank
	var luminance float64
	if lum := field(COL_LUMINANCE); lum != "" || channel == color.White {
		if luminance, err = strconv.ParseFloat(lum, 64); err != nil {
			return color.Reading{}, fmt.Errorf("invalid luminance for %s: %q", channel, lum)
		}
	}

	return color.Reading{Channel: channel, XY: xy, Luminance: luminance}, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// WriteCSV writes readings in the format ReadCSV accepts.
func WriteCSV(out io.Writer, readings []color.Reading) error {
	w := csv.NewWriter(out)
	if err := w.Write(requiredColumns); err != nil {
		return err
	}
	for _, r := range readings {
		record := []string{
			r.Channel.String(),
			strconv.FormatFloat(r.XY.X, 'f', -1, 64),
			strconv.FormatFloat(r.XY.Y, 'f', -1, 64),
			strconv.FormatFloat(r.Luminance, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
