package strategy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ProcError reports a failed external tool invocation. A strategy that
// returns one is considered broken for the rest of the run.
type ProcError struct {
	Tool   string
	Code   int
	Stderr string
	Err    error
}

func (e *ProcError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: exit %d: %s", e.Tool, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ProcError) Unwrap() error {
	return e.Err
}

// runTool executes an external command with a timeout and returns its
// stdout. Empty output with a clean exit 1 means no match was found;
// anything else non-zero is a ProcError.
func runTool(timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, &ProcError{Tool: name, Code: -1, Err: ctx.Err()}
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code == 1 && msg == "" {
				return nil, nil
			}
			return nil, &ProcError{Tool: name, Code: code, Stderr: msg, Err: err}
		}
		return nil, &ProcError{Tool: name, Code: -1, Stderr: msg, Err: err}
	}
	return stdout.Bytes(), nil
}

// parseMatch parses "line:text" output as emitted by grep -n and the awk
// program. Only the first output line is consulted, which makes every
// external strategy report the first occurrence. Line numbers are 1-based
// on the wire and converted to 0-based here.
func parseMatch(tool string, out []byte) (Result, error) {
	line := out
	if i := bytes.IndexByte(out, '\n'); i >= 0 {
		line = out[:i]
	}
	i := bytes.IndexByte(line, ':')
	if i < 0 {
		return Result{}, fmt.Errorf("%s: malformed match output %q", tool, line)
	}
	n, err := strconv.Atoi(string(line[:i]))
	if err != nil || n < 1 {
		return Result{}, fmt.Errorf("%s: malformed line number in %q", tool, line)
	}
	return Result{Line: n - 1, Text: string(line[i+1:]), Found: true}, nil
}
