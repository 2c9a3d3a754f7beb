package strategy

import (
	"errors"
	"strings"
	"unicode"
)

// SanitizeNeedle normalizes raw query input into a clean single-line
// needle: invalid UTF-8 sequences are dropped, trailing NUL/CR/LF bytes
// are cut, remaining non-printable characters are removed, and
// surrounding whitespace is trimmed.
func SanitizeNeedle(raw []byte) (string, error) {
	s := strings.ToValidUTF8(string(raw), "")
	s = strings.TrimRight(s, "\x00\r\n")
	s = strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("needle is empty after sanitization")
	}
	return s, nil
}
