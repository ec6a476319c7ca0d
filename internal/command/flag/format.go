package flag

const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatPlain = "plain"
)

// Format is the flag that selects the output format of a command.
type Format struct {
	*OneOf
}

// NewFormatFlag returns a flag named "format" with the default value plain.
func NewFormatFlag() *Format {
	return &Format{
		OneOf: NewOneOfFlag("format", FormatPlain, "output format", FormatCSV, FormatJSON, FormatPlain),
	}
}
