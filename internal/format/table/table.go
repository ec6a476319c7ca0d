// Package table writes rows as a table with space aligned columns.
package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// columnPadding is the number of spaces between columns.
const columnPadding = 8

// Formatter converts rows into an ASCII table with space separated columns.
type Formatter struct {
	tabWriter *tabwriter.Writer
}

// New returns a Formatter that writes to out. If headers is not empty it is
// written as first row.
func New(headers []string, out io.Writer) *Formatter {
	f := Formatter{
		tabWriter: tabwriter.NewWriter(out, 0, 0, columnPadding, ' ', 0),
	}

	if len(headers) > 0 {
		_, _ = fmt.Fprintln(f.tabWriter, strings.Join(headers, "\t"))
	}

	return &f
}

// WriteRow writes a row to the buffer of the formatter.
// nil values are written as empty columns.
func (f *Formatter) WriteRow(row ...any) error {
	cols := make([]string, len(row))

	for i, col := range row {
		if col != nil {
			cols[i] = fmt.Sprint(col)
		}
	}

	_, err := fmt.Fprintln(f.tabWriter, strings.Join(cols, "\t"))
	return err
}

// Flush writes the buffered rows to the output.
// The column widths are determined from all rows written since the last
// Flush.
func (f *Formatter) Flush() error {
	return f.tabWriter.Flush()
}
