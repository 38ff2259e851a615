//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"arbitat/internal/domain/listing"
	"arbitat/internal/domain/match"
	"arbitat/internal/domain/user"
	"arbitat/internal/infra"
	"arbitat/internal/infra/memstore"
	"arbitat/internal/pkg/clock"
	"arbitat/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
}

func seededStores(t *testing.T) (*memstore.ListingStore, *memstore.UserStore) {
	t.Helper()
	clk := fixedClock()
	listings := memstore.NewListingStore(clk)
	users := memstore.NewUserStore(clk)
	require.NoError(t, memstore.SeedDemoData(listings, users, clk))
	return listings, users
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	listings, users := seededStores(t)

	t.Run("catalog holds the five demo lodges in order", func(t *testing.T) {
		all, err := listings.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 5)

		assert.Equal(t, int64(101), all[0].ID())
		assert.Equal(t, "Sunny View Lodge", all[0].Name())
		assert.Equal(t, int64(150000), all[0].PricePerPeriod())
		assert.Equal(t, int64(105), all[4].ID())
		assert.Equal(t, "Scholar's Haven", all[4].Name())
	})

	t.Run("demo accounts authenticate with the demo password", func(t *testing.T) {
		email, err := user.NewEmail("student@demo.com")
		require.NoError(t, err)

		u, err := users.FindByEmail(ctx, email)
		require.NoError(t, err)

		assert.Equal(t, memstore.DemoRenterID, u.ID())
		assert.Equal(t, user.RoleRenter, u.Role())
		assert.NoError(t, password.ComparePassword(u.PasswordHash(), memstore.DemoPassword))
	})

	t.Run("owner accounts carry phone numbers", func(t *testing.T) {
		u, err := users.FindByID(ctx, memstore.DemoOwnerID)
		require.NoError(t, err)

		assert.Equal(t, user.RoleOwner, u.Role())
		require.NotNil(t, u.Phone())
		assert.Equal(t, "+234 800 123 4567", *u.Phone())
	})
}

func TestListingStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id reports not found", func(t *testing.T) {
		listings, _ := seededStores(t)

		_, err := listings.FindByID(ctx, 999)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("create allocates the next catalog id after the seed", func(t *testing.T) {
		listings, _ := seededStores(t)

		draft, err := listing.NewListing(0, "New Lodge", "Campus Road", 90000, false, nil, nil, "", nil, memstore.DemoOwnerID)
		require.NoError(t, err)

		created, err := listings.Create(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, int64(106), created.ID())

		all, err := listings.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, created.ID(), all[len(all)-1].ID())
	})

	t.Run("ListByIDs resolves in the given order", func(t *testing.T) {
		listings, _ := seededStores(t)

		got, err := listings.ListByIDs(ctx, []int64{104, 101})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(104), got[0].ID())
		assert.Equal(t, int64(101), got[1].ID())
	})

	t.Run("ListByIDs fails on a missing id", func(t *testing.T) {
		listings, _ := seededStores(t)

		_, err := listings.ListByIDs(ctx, []int64{101, 999})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("ListByOwner filters the catalog", func(t *testing.T) {
		listings, _ := seededStores(t)

		got, err := listings.ListByOwner(ctx, memstore.DemoManagerID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(103), got[0].ID())
		assert.Equal(t, int64(104), got[1].ID())
	})
}

func TestDecisionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot of an unknown renter is empty", func(t *testing.T) {
		store := memstore.NewDecisionStore()

		book, err := store.Snapshot(ctx, uuid.New())
		require.NoError(t, err)
		assert.Zero(t, book.DecidedCount())
	})

	t.Run("decide is idempotent per listing", func(t *testing.T) {
		store := memstore.NewDecisionStore()
		renterID := uuid.New()

		changed, err := store.Decide(ctx, renterID, 101, match.DirectionAccept)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = store.Decide(ctx, renterID, 101, match.DirectionReject)
		require.NoError(t, err)
		assert.False(t, changed)

		book, err := store.Snapshot(ctx, renterID)
		require.NoError(t, err)
		assert.Equal(t, match.StatusMatched, book.StatusOf(101))
	})

	t.Run("snapshots are detached from live state", func(t *testing.T) {
		store := memstore.NewDecisionStore()
		renterID := uuid.New()

		_, err := store.Decide(ctx, renterID, 101, match.DirectionAccept)
		require.NoError(t, err)

		book, err := store.Snapshot(ctx, renterID)
		require.NoError(t, err)
		book.Decide(102, match.DirectionAccept)

		fresh, err := store.Snapshot(ctx, renterID)
		require.NoError(t, err)
		assert.Equal(t, 1, fresh.DecidedCount())
	})

	t.Run("matched counts aggregate across renters", func(t *testing.T) {
		store := memstore.NewDecisionStore()
		a, b := uuid.New(), uuid.New()

		_, err := store.Decide(ctx, a, 101, match.DirectionAccept)
		require.NoError(t, err)
		_, err = store.Decide(ctx, b, 101, match.DirectionAccept)
		require.NoError(t, err)
		_, err = store.Decide(ctx, b, 102, match.DirectionReject)
		require.NoError(t, err)

		counts, err := store.MatchedCountByListing(ctx, []int64{101, 102, 103})
		require.NoError(t, err)
		assert.Equal(t, 2, counts[101])
		assert.Equal(t, 0, counts[102]) // rejected is not matched
		assert.Equal(t, 0, counts[103])
	})
}

func TestSelectionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("selections are scoped per renter", func(t *testing.T) {
		store := memstore.NewSelectionStore(3)
		a, b := uuid.New(), uuid.New()

		_, _, err := store.Toggle(ctx, a, 101)
		require.NoError(t, err)

		ids, err := store.IDs(ctx, b)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("store enforces the configured bound", func(t *testing.T) {
		store := memstore.NewSelectionStore(2)
		renterID := uuid.New()

		for _, id := range []int64{101, 102} {
			_, changed, err := store.Toggle(ctx, renterID, id)
			require.NoError(t, err)
			assert.True(t, changed)
		}

		selected, changed, err := store.Toggle(ctx, renterID, 103)
		require.NoError(t, err)
		assert.False(t, selected)
		assert.False(t, changed)
		assert.Equal(t, 2, store.Limit())
	})
}

func TestUserStoreUpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	_, users := seededStores(t)

	before, err := users.FindByID(ctx, memstore.DemoRenterID)
	require.NoError(t, err)
	require.Nil(t, before.LastLogin())

	require.NoError(t, users.UpdateLastLogin(ctx, memstore.DemoRenterID))

	after, err := users.FindByID(ctx, memstore.DemoRenterID)
	require.NoError(t, err)
	require.NotNil(t, after.LastLogin())
}
