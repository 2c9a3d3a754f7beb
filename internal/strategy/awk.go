package strategy

import (
	"strings"
	"time"
)

// awkProg compares each line against the variable q, so the needle is
// never spliced into awk source text.
const awkProg = `$0 == q { print NR ":" $0 }`

type awkStrategy struct {
	timeout time.Duration
}

// NewAwk creates a strategy that shells out to awk with an exact
// whole-line comparison.
func NewAwk(cfg Config) Strategy {
	return &awkStrategy{timeout: cfg.procTimeout()}
}

func (s *awkStrategy) Search(path, needle string) (Result, error) {
	// awk -v applies C escape processing to the value, so backslashes
	// must be doubled to arrive verbatim.
	quoted := strings.ReplaceAll(needle, `\`, `\\`)
	out, err := runTool(s.timeout, "awk", "-v", "q="+quoted, awkProg, path)
	if err != nil {
		return Result{}, err
	}
	if len(out) == 0 {
		return Result{}, nil
	}
	return parseMatch("awk", out)
}

func (*awkStrategy) Name() string {
	return "awk"
}
