package serializer

import (
	"fmt"
	"strings"

	"hexagon/utils"
)

// Record is the final score of one finished game.
type Record struct {
	Red  int
	Blue int
}

// Difference is the absolute point difference the ranking is ordered by.
func (r Record) Difference() int {
	return utils.Abs(r.Red - r.Blue)
}

// SerializeRanking writes one "<i>. Red: <red> - Blue: <blue>" line per record.
func SerializeRanking(records []Record) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%d. Red: %d - Blue: %d", i+1, r.Red, r.Blue)
	}
	return strings.Join(lines, "\n")
}

// DeserializeRanking parses text produced by SerializeRanking. Empty text is an
// empty ranking.
func DeserializeRanking(text string) ([]Record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Record{}, nil
	}

	lines := splitLines(text)
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		parts := strings.Split(line, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRanking, i+1, line)
		}

		redPart, _, found := strings.Cut(parts[1], "-")
		if !found {
			return nil, fmt.Errorf("%w: line %d: missing separator", ErrMalformedRanking, i+1)
		}

		red, ok := atoi(redPart)
		if !ok || red < 0 {
			return nil, fmt.Errorf("%w: line %d: invalid red points %q", ErrMalformedRanking, i+1, redPart)
		}
		blue, ok := atoi(parts[2])
		if !ok || blue < 0 {
			return nil, fmt.Errorf("%w: line %d: invalid blue points %q", ErrMalformedRanking, i+1, parts[2])
		}

		records = append(records, Record{Red: red, Blue: blue})
	}
	return records, nil
}
