//go:build unit

package match_test

import (
	"testing"

	"arbitat/internal/domain/match"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookDecide(t *testing.T) {
	t.Run("first decision is recorded", func(t *testing.T) {
		b := match.NewBook(uuid.New())

		changed := b.Decide(101, match.DirectionAccept)

		assert.True(t, changed)
		assert.Equal(t, match.StatusMatched, b.StatusOf(101))
		assert.True(t, b.IsMatched(101))
	})

	t.Run("reject is terminal too", func(t *testing.T) {
		b := match.NewBook(uuid.New())

		changed := b.Decide(102, match.DirectionReject)

		assert.True(t, changed)
		assert.Equal(t, match.StatusRejected, b.StatusOf(102))
		assert.False(t, b.IsMatched(102))
	})

	t.Run("repeat decision is a no-op", func(t *testing.T) {
		b := match.NewBook(uuid.New())
		require.True(t, b.Decide(101, match.DirectionAccept))

		assert.False(t, b.Decide(101, match.DirectionAccept))
		assert.False(t, b.Decide(101, match.DirectionReject))
		assert.Equal(t, match.StatusMatched, b.StatusOf(101))
		assert.Equal(t, 1, b.DecidedCount())
	})

	t.Run("undecided listing reports undecided", func(t *testing.T) {
		b := match.NewBook(uuid.New())

		assert.Equal(t, match.StatusUndecided, b.StatusOf(999))
	})
}

func TestBookPartition(t *testing.T) {
	catalog := []int64{101, 102, 103, 104, 105}
	b := match.NewBook(uuid.New())

	b.Decide(103, match.DirectionAccept)
	b.Decide(101, match.DirectionReject)
	b.Decide(105, match.DirectionAccept)

	// Matched, rejected and undecided never overlap and cover the catalog.
	matched := b.MatchedIDs()
	rejected := b.RejectedIDs()
	undecided := b.UndecidedFrom(catalog)

	if diff := cmp.Diff([]int64{103, 105}, matched); diff != "" {
		t.Errorf("matched mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{101}, rejected); diff != "" {
		t.Errorf("rejected mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{102, 104}, undecided); diff != "" {
		t.Errorf("undecided mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, matched, 2)
	assert.Len(t, rejected, 1)
	assert.Equal(t, len(catalog), len(matched)+len(rejected)+len(undecided))
}

func TestBookUndecidedKeepsCatalogOrder(t *testing.T) {
	catalog := []int64{101, 102, 103, 104, 105}
	b := match.NewBook(uuid.New())

	// Decide out of order; the pool must still follow catalog order.
	b.Decide(104, match.DirectionAccept)
	b.Decide(102, match.DirectionReject)

	assert.Equal(t, []int64{101, 103, 105}, b.UndecidedFrom(catalog))
}

func TestBookMatchedIDsAreCopies(t *testing.T) {
	b := match.NewBook(uuid.New())
	b.Decide(101, match.DirectionAccept)

	ids := b.MatchedIDs()
	ids[0] = 999

	assert.Equal(t, []int64{101}, b.MatchedIDs())
}

func TestNewDirection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  match.Direction
		errIs error
	}{
		{name: "accept", input: "accept", want: match.DirectionAccept},
		{name: "reject", input: "reject", want: match.DirectionReject},
		{name: "unknown", input: "maybe", errIs: match.ErrInvalidDirection},
		{name: "empty", input: "", errIs: match.ErrInvalidDirection},
		{name: "case sensitive", input: "Accept", errIs: match.ErrInvalidDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := match.NewDirection(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstructBook(t *testing.T) {
	renterID := uuid.New()
	b := match.ReconstructBook(renterID, []int64{103, 105}, []int64{101})

	assert.Equal(t, renterID, b.RenterID())
	assert.Equal(t, []int64{103, 105}, b.MatchedIDs())
	assert.Equal(t, []int64{101}, b.RejectedIDs())
	assert.Equal(t, 3, b.DecidedCount())
}
