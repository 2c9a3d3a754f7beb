package output

import (
	"fmt"
	"math"
	"sort"
)

// Points awarded by placement: 1st=10, 2nd=7, 3rd=5, 4th=4, 5th=3, 6th=2, 7th=1.
var placementPoints = []float64{10, 7, 5, 4, 3, 2, 1}

// rankedEntry holds a name and score for tie detection.
type rankedEntry struct {
	name  string
	score float64
}

// Round3 rounds to 3 decimal places for tie detection.
func Round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// WinnerEntry represents a ranked entry for winner display.
type WinnerEntry struct {
	Name  string
	Score float64
}

// FormatWinners returns winner names and the first runner-up for comparison.
// If multiple entries tie for first, all are returned as winners.
// Returns (winners, runnerUp) where runnerUp is nil if everyone ties or only one entry.
func FormatWinners(entries []WinnerEntry) (winners []string, runnerUp *WinnerEntry) {
	if len(entries) == 0 {
		return nil, nil
	}

	// Find all entries tied for first
	bestScore := Round3(entries[0].Score)
	for _, e := range entries {
		if Round3(e.Score) != bestScore {
			runnerUp = &WinnerEntry{Name: e.Name, Score: e.Score}
			break
		}
		winners = append(winners, e.Name)
	}

	return winners, runnerUp
}

// ComputeRankings calculates the overall strategy ranking and the
// per-suite medal table. Only the search suite feeds the overall table;
// the other suites rank their own namespaces (cache backends, tree
// algorithms) and appear in the medal table alone.
//
//nolint:gocognit,revive // ranking covers every suite in one pass
func ComputeRankings(results Results) ([]Ranking, *MedalTable) {
	scores := make(map[string]float64)
	medals := make(map[string][3]int) // [gold, silver, bronze]

	categoryMedals := make(map[string]map[string][3]int)
	categoryBenchmarks := make(map[string][]BenchmarkMedal)

	// assignPoints handles tie detection: entries with scores equal to 3 decimal
	// places share the same medal position. Entries must be pre-sorted by score.
	assignPoints := func(category, benchName string, entries []rankedEntry) {
		overall := category == "Search"
		bm := BenchmarkMedal{Name: benchName}
		pos := 0 // current medal position (0=gold, 1=silver, 2=bronze)
		i := 0

		for i < len(entries) {
			// Find all entries tied at this position
			var tied []string
			baseScore := Round3(entries[i].score)
			for i < len(entries) && Round3(entries[i].score) == baseScore {
				tied = append(tied, entries[i].name)
				i++
			}

			// Assign points and medals to all tied entries
			for _, n := range tied {
				if overall && pos < len(placementPoints) {
					scores[n] += placementPoints[pos]
				}
				if pos < 3 {
					if overall {
						m := medals[n]
						m[pos]++
						medals[n] = m
					}

					if categoryMedals[category] == nil {
						categoryMedals[category] = make(map[string][3]int)
					}
					cm := categoryMedals[category][n]
					cm[pos]++
					categoryMedals[category][n] = cm
				}
			}

			// Store tied winners in medal struct
			if pos < 3 {
				switch pos {
				case 0:
					bm.Gold = tied
				case 1:
					bm.Silver = tied
				case 2:
					bm.Bronze = tied
				}
			}

			// Skip positions based on number of ties
			pos += len(tied)
		}

		categoryBenchmarks[category] = append(categoryBenchmarks[category], bm)
	}

	// Search suite - rank strategies per size by mean time (lower is better)
	if results.Search != nil && len(results.Search.Cases) > 0 {
		for _, lines := range searchSizes(results.Search) {
			var entries []rankedEntry
			for _, c := range results.Search.Cases {
				if c.Lines == lines {
					entries = append(entries, rankedEntry{c.Strategy, float64(c.Timing.Mean)})
				}
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].score < entries[j].score
			})
			assignPoints("Search", SizeLabel(lines), entries)
		}
	}

	// Cache suite - rank backends by warm hit time (lower is better)
	if results.Cache != nil && len(results.Cache.Cases) > 0 {
		entries := make([]rankedEntry, len(results.Cache.Cases))
		for i, c := range results.Cache.Cases {
			entries[i] = rankedEntry{c.Backend, float64(c.Warm.Mean)}
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].score < entries[j].score
		})
		assignPoints("Cache", "Warm Hits", entries)
	}

	// Traverse suite - rank algorithms per target (lower is better)
	if results.Traverse != nil && len(results.Traverse.Cases) > 0 {
		for _, target := range traverseTargets(results.Traverse) {
			var entries []rankedEntry
			for _, c := range results.Traverse.Cases {
				if c.Target == target {
					entries = append(entries, rankedEntry{c.Algo, float64(c.Timing.Mean)})
				}
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].score < entries[j].score
			})
			assignPoints("Traverse", target, entries)
		}
	}

	// Memory suite - rank strategies by allocated bytes (lower is better)
	if results.Memory != nil && len(results.Memory.Results) > 0 {
		entries := make([]rankedEntry, len(results.Memory.Results))
		for i, r := range results.Memory.Results {
			entries[i] = rankedEntry{r.Name, float64(r.Bytes)}
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].score < entries[j].score
		})
		assignPoints("Memory", "Allocations", entries)
	}

	if len(scores) == 0 && len(categoryBenchmarks) == 0 {
		return nil, nil
	}

	// Sort strategies by score, then by medals as tiebreaker
	type strategyRank struct {
		name   string
		score  float64
		gold   int
		silver int
		bronze int
	}
	var ranks []strategyRank
	for name, score := range scores {
		m := medals[name]
		ranks = append(ranks, strategyRank{name, score, m[0], m[1], m[2]})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].score != ranks[j].score {
			return ranks[i].score > ranks[j].score
		}
		if ranks[i].gold != ranks[j].gold {
			return ranks[i].gold > ranks[j].gold
		}
		if ranks[i].silver != ranks[j].silver {
			return ranks[i].silver > ranks[j].silver
		}
		return ranks[i].bronze > ranks[j].bronze
	})

	var result []Ranking
	for i, r := range ranks {
		result = append(result, Ranking{
			Rank:   i + 1,
			Name:   r.name,
			Score:  r.score,
			Gold:   r.gold,
			Silver: r.silver,
			Bronze: r.bronze,
		})
	}

	// Build category medal table
	catOrder := []string{"Search", "Cache", "Traverse", "Memory"}
	var categories []CategoryMedals
	for _, cat := range catOrder {
		bm := categoryBenchmarks[cat]
		if len(bm) == 0 {
			continue
		}

		cm := categoryMedals[cat]
		catRanks := make([]strategyRank, 0, len(cm))
		for name, m := range cm {
			catRanks = append(catRanks, strategyRank{
				name:   name,
				gold:   m[0],
				silver: m[1],
				bronze: m[2],
			})
		}
		sort.Slice(catRanks, func(i, j int) bool {
			if catRanks[i].gold != catRanks[j].gold {
				return catRanks[i].gold > catRanks[j].gold
			}
			if catRanks[i].silver != catRanks[j].silver {
				return catRanks[i].silver > catRanks[j].silver
			}
			if catRanks[i].bronze != catRanks[j].bronze {
				return catRanks[i].bronze > catRanks[j].bronze
			}
			return catRanks[i].name < catRanks[j].name
		})

		out := make([]Ranking, len(catRanks))
		for i, r := range catRanks {
			out[i] = Ranking{
				Rank:   i + 1,
				Name:   r.name,
				Gold:   r.gold,
				Silver: r.silver,
				Bronze: r.bronze,
			}
		}

		categories = append(categories, CategoryMedals{
			Name:       cat,
			Benchmarks: bm,
			Rankings:   out,
		})
	}

	return result, &MedalTable{Categories: categories}
}

// searchSizes returns the distinct case sizes in run order.
func searchSizes(data *SearchData) []int {
	if len(data.Sizes) > 0 {
		return data.Sizes
	}
	var sizes []int
	seen := make(map[int]bool)
	for _, c := range data.Cases {
		if !seen[c.Lines] {
			seen[c.Lines] = true
			sizes = append(sizes, c.Lines)
		}
	}
	return sizes
}

// traverseTargets returns the distinct targets in run order.
func traverseTargets(data *TraverseData) []string {
	var targets []string
	seen := make(map[string]bool)
	for _, c := range data.Cases {
		if !seen[c.Target] {
			seen[c.Target] = true
			targets = append(targets, c.Target)
		}
	}
	return targets
}

// SizeLabel renders a fixture size for tables and rankings.
func SizeLabel(lines int) string {
	if lines%1000 == 0 {
		return fmt.Sprintf("%dK lines", lines/1000)
	}
	return fmt.Sprintf("%d lines", lines)
}
