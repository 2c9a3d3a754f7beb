package strategy

import "time"

type grepStrategy struct {
	timeout    time.Duration
	firstMatch bool
}

// NewGrep creates a strategy that shells out to grep with fixed-string
// whole-line matching. grep scans the entire file; only the first
// reported match is used.
func NewGrep(cfg Config) Strategy {
	return &grepStrategy{timeout: cfg.procTimeout()}
}

// NewGrepFirstMatch creates a grep strategy that passes -m 1 so the
// tool itself stops at the first match.
func NewGrepFirstMatch(cfg Config) Strategy {
	return &grepStrategy{timeout: cfg.procTimeout(), firstMatch: true}
}

func (s *grepStrategy) Search(path, needle string) (Result, error) {
	args := []string{"-n", "-F", "-x"}
	if s.firstMatch {
		args = append(args, "-m", "1")
	}
	args = append(args, "--", needle, path)

	out, err := runTool(s.timeout, "grep", args...)
	if err != nil {
		return Result{}, err
	}
	if len(out) == 0 {
		return Result{}, nil
	}
	return parseMatch("grep", out)
}

func (s *grepStrategy) Name() string {
	if s.firstMatch {
		return "grep-m1"
	}
	return "grep"
}
