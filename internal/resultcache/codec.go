package resultcache

import (
	"encoding/binary"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

// encodeResult packs a result into bytes for byte-oriented caches:
// one found flag, a varint line number, then the raw text.
func encodeResult(v strategy.Result) []byte {
	b := make([]byte, 0, 1+binary.MaxVarintLen64+len(v.Text))
	if v.Found {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	b = binary.AppendVarint(b, int64(v.Line))
	return append(b, v.Text...)
}

func decodeResult(b []byte) (strategy.Result, bool) {
	if len(b) < 2 || b[0] > 1 {
		return strategy.Result{}, false
	}
	line, n := binary.Varint(b[1:])
	if n <= 0 {
		return strategy.Result{}, false
	}
	return strategy.Result{Line: int(line), Text: string(b[1+n:]), Found: b[0] == 1}, true
}
