package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/nwalipaul0911/gosearchmark/internal/benchmark"
)

var csvHeader = []string{"size", "strategy", "cached", "rounds", "mean_ns", "stddev_ns", "min_ns", "max_ns", "rounds_per_sec"}

// WriteCSV writes the search cases as CSV, one row per (size, strategy).
// When a baseline is given, rows gain the baseline mean and the delta
// against it.
func WriteCSV(filename string, results Results, baseline *Results) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := slices.Clone(csvHeader)
	withBase := baseline != nil && baseline.Search != nil
	if withBase {
		header = append(header, "baseline_mean_ns", "delta_pct")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	var base map[string]benchmark.SearchCase
	if withBase {
		base = searchCasesByKey(baseline.Search.Cases)
	}

	if results.Search != nil {
		for _, c := range results.Search.Cases {
			row := []string{
				strconv.Itoa(c.Lines),
				c.Strategy,
				strconv.FormatBool(c.Cached),
				strconv.Itoa(c.Timing.Rounds),
				strconv.FormatInt(int64(c.Timing.Mean), 10),
				strconv.FormatInt(int64(c.Timing.StdDev), 10),
				strconv.FormatInt(int64(c.Timing.Min), 10),
				strconv.FormatInt(int64(c.Timing.Max), 10),
				strconv.FormatFloat(c.Timing.PerSec, 'f', -1, 64),
			}
			if withBase {
				if b, ok := base[caseKey(c)]; ok && b.Timing.Mean > 0 {
					delta := (float64(c.Timing.Mean) - float64(b.Timing.Mean)) / float64(b.Timing.Mean) * 100
					row = append(row,
						strconv.FormatInt(int64(b.Timing.Mean), 10),
						strconv.FormatFloat(delta, 'f', 2, 64))
				} else {
					row = append(row, "", "")
				}
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCSV restores the search cases WriteCSV emitted. Baseline columns,
// when present, are ignored.
func ReadCSV(filename string) ([]benchmark.SearchCase, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	var cases []benchmark.SearchCase
	for _, rec := range records[1:] {
		if len(rec) < 9 {
			return nil, fmt.Errorf("%s: short row %v", filename, rec)
		}
		c := benchmark.SearchCase{Strategy: rec[1]}
		if c.Lines, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("%s: size %q: %w", filename, rec[0], err)
		}
		if c.Cached, err = strconv.ParseBool(rec[2]); err != nil {
			return nil, fmt.Errorf("%s: cached %q: %w", filename, rec[2], err)
		}
		if c.Timing.Rounds, err = strconv.Atoi(rec[3]); err != nil {
			return nil, fmt.Errorf("%s: rounds %q: %w", filename, rec[3], err)
		}
		durs := []*time.Duration{&c.Timing.Mean, &c.Timing.StdDev, &c.Timing.Min, &c.Timing.Max}
		for i, dst := range durs {
			n, err := strconv.ParseInt(rec[4+i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %s %q: %w", filename, csvHeader[4+i], rec[4+i], err)
			}
			*dst = time.Duration(n)
		}
		if c.Timing.PerSec, err = strconv.ParseFloat(rec[8], 64); err != nil {
			return nil, fmt.Errorf("%s: rounds_per_sec %q: %w", filename, rec[8], err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}
