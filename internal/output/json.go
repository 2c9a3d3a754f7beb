package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

// WriteJSON writes benchmark results to a JSON file. A .zst suffix
// compresses the output, which keeps saved baselines small.
func WriteJSON(filename string, results Results, commandLine string) error {
	results.Timestamp = time.Now().Format(time.RFC3339)
	results.MachineInfo.CommandLine = commandLine

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encodeJSON(f, filename, results); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return f.Close()
}

func encodeJSON(f *os.File, filename string, results Results) error {
	var w io.Writer = f
	var zw *zstd.Encoder
	if strings.HasSuffix(filename, ".zst") {
		var err error
		zw, err = zstd.NewWriter(f)
		if err != nil {
			return err
		}
		w = zw
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		if zw != nil {
			zw.Close()
		}
		return err
	}
	if zw != nil {
		// Close flushes the final frame; skipping it truncates the file.
		return zw.Close()
	}
	return nil
}

// ReadJSON loads results written by WriteJSON, decompressing .zst files.
func ReadJSON(filename string) (Results, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Results{}, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return Results{}, err
		}
		defer zr.Close()
		r = zr
	}

	var results Results
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return Results{}, fmt.Errorf("parse %s: %w", filename, err)
	}
	return results, nil
}
