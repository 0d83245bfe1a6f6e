package ranking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"hexagon/game"
	"hexagon/serializer"
	"hexagon/storage"
)

func TestMerge(t *testing.T) {
	t.Run("orders by difference", func(t *testing.T) {
		records := []serializer.Record{{Red: 10, Blue: 0}, {Red: 5, Blue: 3}}
		merged := Merge(records, game.Points{Red: 1, Blue: 7})

		want := []serializer.Record{{Red: 10, Blue: 0}, {Red: 1, Blue: 7}, {Red: 5, Blue: 3}}
		if diff := cmp.Diff(want, merged); diff != "" {
			t.Errorf("ranking mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, records, 2, "Input should not be modified")
	})

	t.Run("equal differences keep their order", func(t *testing.T) {
		records := []serializer.Record{{Red: 4, Blue: 2}, {Red: 2, Blue: 4}}
		merged := Merge(records, game.Points{Red: 8, Blue: 6})

		want := []serializer.Record{{Red: 4, Blue: 2}, {Red: 2, Blue: 4}, {Red: 8, Blue: 6}}
		if diff := cmp.Diff(want, merged); diff != "" {
			t.Errorf("ranking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps the five best", func(t *testing.T) {
		records := []serializer.Record{
			{Red: 9, Blue: 0},
			{Red: 8, Blue: 0},
			{Red: 7, Blue: 0},
			{Red: 6, Blue: 0},
			{Red: 5, Blue: 0},
		}

		merged := Merge(records, game.Points{Red: 0, Blue: 1})
		if diff := cmp.Diff(records, merged); diff != "" {
			t.Errorf("a weaker game should not enter a full ranking (-want +got):\n%s", diff)
		}

		merged = Merge(records, game.Points{Red: 0, Blue: 20})
		require.Len(t, merged, 5)
		require.Equal(t, serializer.Record{Red: 0, Blue: 20}, merged[0])
		require.Equal(t, serializer.Record{Red: 6, Blue: 0}, merged[4])
	})

	t.Run("empty ranking", func(t *testing.T) {
		merged := Merge(nil, game.Points{Red: 3, Blue: 3})
		require.Equal(t, []serializer.Record{{Red: 3, Blue: 3}}, merged)
	})
}

type memoryStore struct {
	storage.Store
	ranking string
	writes  int
}

func (m *memoryStore) LoadRanking() (string, error) { return m.ranking, nil }

func (m *memoryStore) WriteRanking(text string) error {
	m.ranking = text
	m.writes++
	return nil
}

func TestUpdate(t *testing.T) {
	t.Run("writes the merged ranking", func(t *testing.T) {
		store := &storage.FileStore{Dir: t.TempDir()}

		require.NoError(t, Update(store, game.Points{Red: 4, Blue: 2}))
		require.NoError(t, Update(store, game.Points{Red: 0, Blue: 30}))

		text, err := store.LoadRanking()
		require.NoError(t, err)
		require.Equal(t, "1. Red: 0 - Blue: 30\n2. Red: 4 - Blue: 2", text)
	})

	t.Run("leaves a malformed ranking alone", func(t *testing.T) {
		store := &memoryStore{ranking: "not a ranking"}

		err := Update(store, game.Points{Red: 4, Blue: 2})
		require.ErrorIs(t, err, serializer.ErrMalformedRanking)
		require.Equal(t, 0, store.writes)
		require.Equal(t, "not a ranking", store.ranking)
	})

	t.Run("reports io failures", func(t *testing.T) {
		store := &storage.FileStore{Dir: t.TempDir() + "/missing"}
		err := Update(store, game.Points{Red: 4, Blue: 2})
		require.ErrorIs(t, err, storage.ErrIOFailure)
	})
}
