// Package ranking keeps the best finished games ordered by point difference.
package ranking

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"hexagon/game"
	"hexagon/meta"
	"hexagon/serializer"
	"hexagon/storage"
)

// Merge adds the result of a game to records and returns the new ranking: ordered by
// descending point difference, equal differences in their previous order, at most
// meta.RANKING_SIZE entries. records is not modified.
func Merge(records []serializer.Record, points game.Points) []serializer.Record {
	merged := make([]serializer.Record, 0, len(records)+1)
	merged = append(merged, records...)
	merged = append(merged, serializer.Record{Red: points.Red, Blue: points.Blue})

	slices.SortStableFunc(merged, func(a, b serializer.Record) int {
		return b.Difference() - a.Difference()
	})

	if len(merged) > meta.RANKING_SIZE {
		merged = merged[:meta.RANKING_SIZE]
	}
	return merged
}

// Update records a finished game in the store's ranking. A ranking that cannot be
// parsed is left as it is.
func Update(store storage.Store, points game.Points) error {
	text, err := store.LoadRanking()
	if err != nil {
		return fmt.Errorf("failed to load ranking: %w", err)
	}

	records, err := serializer.DeserializeRanking(text)
	if err != nil {
		return fmt.Errorf("failed to parse ranking: %w", err)
	}

	merged := Merge(records, points)
	err = store.WriteRanking(serializer.SerializeRanking(merged))
	if err != nil {
		return fmt.Errorf("failed to write ranking: %w", err)
	}

	log.Debug().Msgf("Ranking updated with Red %d - Blue %d, %d entries", points.Red, points.Blue, len(merged))
	return nil
}
