package command

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/simplesurance/buildplus/internal/command/term"
	"github.com/simplesurance/buildplus/internal/log"
	"github.com/simplesurance/buildplus/internal/testutils/logwriter"
)

// interceptCmdOutput changes the stdout and stderr streams to that the
// commands write to the returned buffers, all output is additionally still
// logged via the test logger
func interceptCmdOutput(t *testing.T) (stdoutBuf, stderrBuf *bytes.Buffer) {
	var bufStdout bytes.Buffer
	var bufStderr bytes.Buffer

	oldStdout := stdout
	stdout = term.NewStream(logwriter.New(t, &bufStdout))
	oldStderr := stderr
	stderr = term.NewStream(logwriter.New(t, &bufStderr))

	t.Cleanup(func() {
		stdout = oldStdout
		stderr = oldStderr
	})

	return &bufStdout, &bufStderr
}

type exitInfo struct {
	Code int
}

func (e *exitInfo) String() string {
	return fmt.Sprintf("program terminated with exit code: %d", e.Code)
}

// initTest does the following:
// - changes the exitFunc to panic instead of calling os.Exit(),
// - changes stdout and stderr streams for the command to be redirect to the test logger,
// - disables colored output.
func initTest(t *testing.T) {
	t.Helper()

	oldExitFunc := exitFunc
	exitFunc = func(code int) {
		panic(&exitInfo{Code: code})
	}

	oldNoColor := color.NoColor
	color.NoColor = true

	t.Cleanup(func() {
		exitFunc = oldExitFunc
		color.NoColor = oldNoColor
	})

	redirectOutputToLogger(t)
}

func redirectOutputToLogger(t *testing.T) {
	log.RedirectToTestingLog(t)

	oldStdout := stdout
	stdout = term.NewStream(logwriter.New(t, io.Discard))
	oldStderr := stderr
	stderr = term.NewStream(logwriter.New(t, io.Discard))

	t.Cleanup(func() {
		stdout = oldStdout
		stderr = oldStderr
	})
}

type cmdExecuter interface {
	SetArgs([]string)
	Execute() error
}

// execCheck runs cmd with args and fails the test if it does not terminate
// with expectedExitCode.
func execCheck(t *testing.T, cmd cmdExecuter, expectedExitCode int, args ...string) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			return
		}

		if info, ok := r.(*exitInfo); ok {
			if info.Code != expectedExitCode {
				t.Fatalf("command exited with code %d, expected: %d", info.Code, expectedExitCode)
			}

			return
		}

		panic(r)
	}()

	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	require.NoError(t, err)

	require.Equalf(
		t,
		exitCodeSuccess, expectedExitCode,
		"command did not panic, expecting it to panic and fail with exitCode: %d", expectedExitCode,
	)
}
