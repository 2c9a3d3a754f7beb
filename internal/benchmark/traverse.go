package benchmark

import (
	"fmt"

	"github.com/nwalipaul0911/gosearchmark/internal/traverse"
)

// TraverseCase holds one (algorithm, target) tree-search timing.
type TraverseCase struct {
	Algo   string `json:"algo"`
	Target string `json:"target"`
	Timing Timing `json:"timing"`
}

// Default tree dimensions. Depth 10 and width 3 give 29,524 nodes.
const (
	DefaultTreeDepth = 10
	DefaultTreeWidth = 3
)

// RunTraverse times depth-first against breadth-first search over one
// generated tree. Targets sit at the root, halfway down, at the
// rightmost leaf, and (for the full-walk case) nowhere.
func RunTraverse(depth, width, rounds int) ([]TraverseCase, []Failure, error) {
	if rounds < 1 {
		rounds = DefaultRounds
	}
	root := traverse.Build(depth, width)
	if root == nil {
		return nil, nil, fmt.Errorf("empty tree for depth=%d width=%d", depth, width)
	}

	lastLevel := 1
	for range depth - 1 {
		lastLevel *= width
	}
	targets := []struct {
		name  string
		value string
		want  bool
	}{
		{"root", traverse.NodeValue(0, 0), true},
		{"middle", traverse.NodeValue(depth/2, 0), true},
		{"leaf", traverse.NodeValue(depth-1, lastLevel-1), true},
		{"missing", "node-404-0", false},
	}
	algos := []struct {
		name string
		fn   func(*traverse.Node, string) *traverse.Node
	}{
		{"dfs", traverse.DFS},
		{"bfs", traverse.BFS},
	}

	var cases []TraverseCase
	var failures []Failure
	for _, algo := range algos {
		for _, tgt := range targets {
			caseName := fmt.Sprintf("%s/%s", algo.name, tgt.name)
			timing, err := Measure(rounds, func() error {
				n := algo.fn(root, tgt.value)
				if (n != nil) != tgt.want {
					return fmt.Errorf("%s(%s): found=%v, want %v", algo.name, tgt.value, n != nil, tgt.want)
				}
				if n != nil && n.Value != tgt.value {
					return fmt.Errorf("%s(%s): landed on %s", algo.name, tgt.value, n.Value)
				}
				return nil
			})
			if err != nil {
				fmt.Printf("  %s: %v\n", caseName, err)
				failures = append(failures, Failure{Suite: "traverse", Case: caseName, Detail: err.Error()})
				continue
			}
			cases = append(cases, TraverseCase{Algo: algo.name, Target: tgt.name, Timing: timing})
		}
	}

	return cases, failures, nil
}
