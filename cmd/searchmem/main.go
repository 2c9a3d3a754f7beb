// Package main measures heap allocations for a single search strategy.
// Run in an isolated process for clean numbers.
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

func main() {
	name := flag.String("strategy", "", "search strategy to probe")
	file := flag.String("file", "", "file to search")
	needle := flag.String("needle", "", "line to search for")
	flag.Parse()

	if *name == "" || *file == "" || *needle == "" {
		fmt.Println(`{"error":"strategy, file and needle are required"}`)
		return
	}

	s := strategy.New(*name, strategy.Config{})
	if s == nil {
		fmt.Printf(`{"error":%q}`+"\n", fmt.Sprintf("unknown strategy %q", *name))
		return
	}

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	res, err := s.Search(*file, *needle)
	if err != nil {
		fmt.Printf(`{"error":%q}`+"\n", err)
		return
	}

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	fmt.Printf(`{"name":%q, "bytes":%d, "line":%d, "found":%v}`,
		*name, after.TotalAlloc-before.TotalAlloc, res.Line, res.Found)
}
