// Package serializer converts games and the ranking to and from their text form.
package serializer

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMalformedSave is returned when a save file cannot be turned back into a game.
	ErrMalformedSave = errors.New("malformed save")
	// ErrMalformedRanking is returned when the ranking file cannot be parsed.
	ErrMalformedRanking = errors.New("malformed ranking")
)

// splitLines drops carriage returns and trailing newlines before splitting.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
