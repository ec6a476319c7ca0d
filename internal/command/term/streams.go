package term

import (
	"fmt"
	"io"
	"sync"
)

const separator = "------------------------------------------------------------------------------"

// Stream is a concurrency-safe output for terminal messages.
type Stream struct {
	stream io.Writer
	lock   sync.Mutex
}

func NewStream(out io.Writer) *Stream {
	return &Stream{stream: out}
}

func (s *Stream) Printf(format string, a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintf(s.stream, format, a...)
}

func (s *Stream) Println(a ...any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fmt.Fprintln(s.stream, a...)
}

// ProjectPrintf prints a message that is prefixed with '<PROJECT-NAME>: '
func (s *Stream) ProjectPrintf(project fmt.Stringer, format string, a ...any) {
	prefix := Highlight(fmt.Sprintf("%s: ", project))

	s.Printf(prefix+format, a...)
}

// PrintSep prints a separator line
func (s *Stream) PrintSep() {
	s.Println(separator)
}

// ErrPrintln prints a message prefixed with a red "ERROR: "
func (s *Stream) ErrPrintln(a ...any) {
	s.Println(append([]any{RedHighlight("ERROR:")}, a...)...)
}

// ErrPrintf prints a message prefixed with a red "ERROR: "
func (s *Stream) ErrPrintf(format string, a ...any) {
	s.Printf(RedHighlight("ERROR:")+" "+format, a...)
}

func (s *Stream) Write(p []byte) (n int, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.stream.Write(p)
}
