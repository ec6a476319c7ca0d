// Package csv writes rows in RFC4180 CSV format.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Formatter converts rows into CSV format.
type Formatter struct {
	csvWriter *csv.Writer
}

// New returns a Formatter that writes to out. If headers is not empty, it is
// written as first record.
func New(headers []string, out io.Writer) *Formatter {
	f := Formatter{
		csvWriter: csv.NewWriter(out),
	}

	if len(headers) > 0 {
		_ = f.csvWriter.Write(headers)
	}

	return &f
}

// WriteRow writes a row to the csvwriter buffer.
// nil values are written as empty fields.
func (f *Formatter) WriteRow(row ...any) error {
	str := make([]string, 0, len(row))

	for _, col := range row {
		if col == nil {
			str = append(str, "")
			continue
		}

		str = append(str, fmt.Sprint(col))
	}

	return f.csvWriter.Write(str)
}

// Flush flushes the csvwriter buffer to its output.
func (f *Formatter) Flush() error {
	f.csvWriter.Flush()

	return f.csvWriter.Error()
}
