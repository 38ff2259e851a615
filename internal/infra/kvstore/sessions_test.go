//go:build unit

package kvstore_test

import (
	"context"
	"testing"

	"arbitat/internal/infra/kvstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessions() (*kvstore.Sessions, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()
	return kvstore.NewSessions(store, "arbitat"), store
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()

	t.Run("empty for unknown renter", func(t *testing.T) {
		s, _ := newSessions()

		ids, err := s.Favorites(ctx, uuid.New())

		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("toggle adds then removes", func(t *testing.T) {
		s, _ := newSessions()
		renterID := uuid.New()

		fav, err := s.ToggleFavorite(ctx, renterID, 101)
		require.NoError(t, err)
		assert.True(t, fav)

		ids, err := s.Favorites(ctx, renterID)
		require.NoError(t, err)
		assert.Equal(t, []int64{101}, ids)

		fav, err = s.ToggleFavorite(ctx, renterID, 101)
		require.NoError(t, err)
		assert.False(t, fav)

		ids, err = s.Favorites(ctx, renterID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("insertion order is kept", func(t *testing.T) {
		s, _ := newSessions()
		renterID := uuid.New()

		for _, id := range []int64{103, 101, 105} {
			_, err := s.ToggleFavorite(ctx, renterID, id)
			require.NoError(t, err)
		}

		ids, err := s.Favorites(ctx, renterID)
		require.NoError(t, err)
		assert.Equal(t, []int64{103, 101, 105}, ids)
	})

	t.Run("corrupt record reads as empty", func(t *testing.T) {
		s, store := newSessions()
		renterID := uuid.New()

		key := "arbitat:favorites:" + renterID.String()
		require.NoError(t, store.Set(ctx, key, "not json"))

		ids, err := s.Favorites(ctx, renterID)

		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("favorites are scoped per renter", func(t *testing.T) {
		s, _ := newSessions()
		a, b := uuid.New(), uuid.New()

		_, err := s.ToggleFavorite(ctx, a, 101)
		require.NoError(t, err)

		ids, err := s.Favorites(ctx, b)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("absent profile is nil", func(t *testing.T) {
		s, _ := newSessions()

		p, err := s.Profile(ctx, uuid.New())

		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("save and read back", func(t *testing.T) {
		s, _ := newSessions()
		renterID := uuid.New()

		want := kvstore.Profile{Name: "Demo Student", Email: "student@demo.com", Role: "renter"}
		require.NoError(t, s.SaveProfile(ctx, renterID, want))

		got, err := s.Profile(ctx, renterID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	})

	t.Run("corrupt profile reads as absent", func(t *testing.T) {
		s, store := newSessions()
		renterID := uuid.New()

		key := "arbitat:profile:" + renterID.String()
		require.NoError(t, store.Set(ctx, key, "{broken"))

		p, err := s.Profile(ctx, renterID)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("clear removes the record", func(t *testing.T) {
		s, _ := newSessions()
		renterID := uuid.New()

		require.NoError(t, s.SaveProfile(ctx, renterID, kvstore.Profile{Name: "x"}))
		require.NoError(t, s.ClearProfile(ctx, renterID))

		p, err := s.Profile(ctx, renterID)
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}
