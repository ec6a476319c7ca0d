package log

import "testing"

// testOutput writes log messages via the logger of testing.T.
type testOutput struct {
	t *testing.T
}

func (o *testOutput) Printf(format string, v ...any) {
	o.t.Helper()
	o.t.Logf(format, v...)
}

func (o *testOutput) Println(v ...any) {
	o.t.Helper()
	o.t.Log(v...)
}

// RedirectToTestingLog redirects all output of the StdLogger to t.Log and
// enables debug messages while the testcase is executed.
// The previous output and debug level are restored when the testcase
// finished.
func RedirectToTestingLog(t *testing.T) {
	oldLogOut := StdLogger.GetOutput()
	oldDebugEnabled := StdLogger.DebugEnabled()

	StdLogger.SetOutput(&testOutput{t: t})
	StdLogger.EnableDebug(true)

	t.Cleanup(func() {
		StdLogger.SetOutput(oldLogOut)
		StdLogger.EnableDebug(oldDebugEnabled)
	})
}
