// Package format defines the interface of the formatters that the commands
// write their tabular output with.
package format

// Formatter writes rows of values.
// Rows are buffered, Flush must be called after the last row was written.
type Formatter interface {
	WriteRow(row ...any) error
	Flush() error
}
