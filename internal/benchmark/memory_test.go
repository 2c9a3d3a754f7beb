package benchmark

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProbe writes an executable script that prints fixed JSON, standing
// in for the built searchmem binary.
func stubProbe(t *testing.T, output string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	bin := filepath.Join(t.TempDir(), "probe")
	script := "#!/bin/sh\necho '" + output + "'\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return bin
}

func TestRunMemProbeParsesOutput(t *testing.T) {
	bin := stubProbe(t, `{"name":"linear","bytes":2048,"line":9,"found":true}`)

	res, err := runMemProbe(bin, "linear", "/tmp/fixture", "needle")
	require.NoError(t, err)
	assert.Equal(t, "linear", res.Name)
	assert.Equal(t, uint64(2048), res.Bytes)
	assert.Equal(t, 9, res.Line)
	assert.True(t, res.Found)
}

func TestRunMemProbeErrorJSON(t *testing.T) {
	bin := stubProbe(t, `{"error":"unknown strategy \"bogus\""}`)

	_, err := runMemProbe(bin, "bogus", "/tmp/fixture", "needle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestRunMemProbeGarbageOutput(t *testing.T) {
	bin := stubProbe(t, "not json at all")

	_, err := runMemProbe(bin, "linear", "/tmp/fixture", "needle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse output")
}

func TestRunMemProbeMissingBinary(t *testing.T) {
	_, err := runMemProbe("/nonexistent/probe", "linear", "/tmp/fixture", "needle")
	assert.Error(t, err)
}
