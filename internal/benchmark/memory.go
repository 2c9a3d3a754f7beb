package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// MemoryResult holds bytes allocated during one search by one strategy.
type MemoryResult struct {
	Name  string `json:"name"`
	Bytes uint64 `json:"bytes"`
	Line  int    `json:"line"`
}

type memOutput struct {
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
	Bytes uint64 `json:"bytes"`
	Line  int    `json:"line"`
	Found bool   `json:"found"`
}

// MemoryStrategies are the strategies the memory suite covers. External
// tools allocate in their own process, so probing them here would only
// measure the exec plumbing.
var MemoryStrategies = []string{"linear", "readlines", "mmap"}

// RunMemory measures allocation totals for a single search per strategy
// using isolated processes, so one strategy's garbage never pollutes
// the next reading. Results are sorted by bytes ascending.
func RunMemory(path, needle string, wantLine int) ([]MemoryResult, []Failure, error) {
	binPath := "./searchmem-probe"
	buildCmd := exec.Command("go", "build", "-o", binPath, "./cmd/searchmem") //nolint:noctx // trusted command
	if out, err := buildCmd.CombinedOutput(); err != nil {
		return nil, nil, fmt.Errorf("build searchmem probe: %w\n%s", err, out)
	}
	defer os.Remove(binPath) //nolint:errcheck // best-effort cleanup

	var failures []Failure
	results := make([]MemoryResult, 0, len(MemoryStrategies))

	for _, name := range MemoryStrategies {
		res, err := runMemProbe(binPath, name, path, needle)
		if err != nil {
			fmt.Printf("  %s: error: %v\n", name, err)
			failures = append(failures, Failure{Suite: "memory", Case: name, Strategy: name, Detail: err.Error()})
			continue
		}
		if !res.Found || res.Line != wantLine {
			detail := fmt.Sprintf("wrong result: line=%d found=%v, want line=%d", res.Line, res.Found, wantLine)
			fmt.Printf("  %s: %s\n", name, detail)
			failures = append(failures, Failure{Suite: "memory", Case: name, Strategy: name, Detail: detail})
			continue
		}
		results = append(results, MemoryResult{Name: res.Name, Bytes: res.Bytes, Line: res.Line})
	}

	// Sort by bytes ascending
	sort.Slice(results, func(i, j int) bool {
		return results[i].Bytes < results[j].Bytes
	})

	return results, failures, nil
}

func runMemProbe(binPath, name, path, needle string) (memOutput, error) {
	cmd := exec.Command(binPath, //nolint:gosec,noctx // trusted binary path
		"-strategy", name,
		"-file", path,
		"-needle", needle,
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return memOutput{}, fmt.Errorf("run %s: %w\n%s", name, err, out)
	}

	var res memOutput
	if err := json.Unmarshal(out, &res); err != nil {
		return memOutput{}, fmt.Errorf("parse output for %s: %w\n%s", name, err, out)
	}

	if res.Error != "" {
		return memOutput{}, fmt.Errorf("%s: %s", name, res.Error)
	}

	return res, nil
}
