//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"arbitat/internal/domain/match"
	"arbitat/internal/infra/memstore"
	"arbitat/internal/pkg/clock"
	"arbitat/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decisionFixture struct {
	commands  commands.DecisionCommands
	listings  *memstore.ListingStore
	decisions *memstore.DecisionStore
}

func newDecisionFixture(t *testing.T) decisionFixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	listings := memstore.NewListingStore(clk)
	users := memstore.NewUserStore(clk)
	require.NoError(t, memstore.SeedDemoData(listings, users, clk))

	decisions := memstore.NewDecisionStore()
	selections := memstore.NewSelectionStore(3)

	return decisionFixture{
		commands:  commands.NewDecisionUseCase(listings, decisions, selections),
		listings:  listings,
		decisions: decisions,
	}
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("accept records a match", func(t *testing.T) {
		f := newDecisionFixture(t)
		renterID := uuid.New()

		result, err := f.commands.Decide(ctx, renterID, 101, "accept")

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, match.StatusMatched, result.Status)
	})

	t.Run("repeat decision reports unchanged and keeps the first outcome", func(t *testing.T) {
		f := newDecisionFixture(t)
		renterID := uuid.New()

		_, err := f.commands.Decide(ctx, renterID, 101, "accept")
		require.NoError(t, err)

		result, err := f.commands.Decide(ctx, renterID, 101, "reject")

		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Equal(t, match.StatusMatched, result.Status)
	})

	t.Run("invalid direction", func(t *testing.T) {
		f := newDecisionFixture(t)

		_, err := f.commands.Decide(ctx, uuid.New(), 101, "maybe")

		assert.ErrorIs(t, err, commands.ErrInvalidDirection)
	})

	t.Run("unknown listing", func(t *testing.T) {
		f := newDecisionFixture(t)

		_, err := f.commands.Decide(ctx, uuid.New(), 999, "accept")

		assert.ErrorIs(t, err, commands.ErrListingNotFound)
	})
}

func TestToggleCompare(t *testing.T) {
	ctx := context.Background()

	t.Run("matched listing can be selected", func(t *testing.T) {
		f := newDecisionFixture(t)
		renterID := uuid.New()

		_, err := f.commands.Decide(ctx, renterID, 101, "accept")
		require.NoError(t, err)

		result, err := f.commands.ToggleCompare(ctx, renterID, 101)

		require.NoError(t, err)
		assert.True(t, result.Selected)
		assert.True(t, result.Changed)
		assert.Equal(t, 1, result.Size)
		assert.Equal(t, 3, result.Limit)
	})

	t.Run("undecided listing is not eligible", func(t *testing.T) {
		f := newDecisionFixture(t)

		_, err := f.commands.ToggleCompare(ctx, uuid.New(), 101)

		assert.ErrorIs(t, err, commands.ErrInvalidSelection)
	})

	t.Run("rejected listing is not eligible", func(t *testing.T) {
		f := newDecisionFixture(t)
		renterID := uuid.New()

		_, err := f.commands.Decide(ctx, renterID, 101, "reject")
		require.NoError(t, err)

		_, err = f.commands.ToggleCompare(ctx, renterID, 101)

		assert.ErrorIs(t, err, commands.ErrInvalidSelection)
	})

	t.Run("add at the bound leaves the selection unchanged", func(t *testing.T) {
		f := newDecisionFixture(t)
		renterID := uuid.New()

		for _, id := range []int64{101, 102, 103, 104} {
			_, err := f.commands.Decide(ctx, renterID, id, "accept")
			require.NoError(t, err)
		}
		for _, id := range []int64{101, 102, 103} {
			result, err := f.commands.ToggleCompare(ctx, renterID, id)
			require.NoError(t, err)
			require.True(t, result.Changed)
		}

		result, err := f.commands.ToggleCompare(ctx, renterID, 104)

		require.NoError(t, err)
		assert.False(t, result.Selected)
		assert.False(t, result.Changed)
		assert.Equal(t, 3, result.Size)
	})

	t.Run("toggle removes a selected listing", func(t *testing.T) {
		f := newDecisionFixture(t)
		renterID := uuid.New()

		_, err := f.commands.Decide(ctx, renterID, 101, "accept")
		require.NoError(t, err)
		_, err = f.commands.ToggleCompare(ctx, renterID, 101)
		require.NoError(t, err)

		result, err := f.commands.ToggleCompare(ctx, renterID, 101)

		require.NoError(t, err)
		assert.False(t, result.Selected)
		assert.True(t, result.Changed)
		assert.Equal(t, 0, result.Size)
	})
}
