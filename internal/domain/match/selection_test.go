//go:build unit

package match_test

import (
	"testing"

	"arbitat/internal/domain/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionToggle(t *testing.T) {
	t.Run("add then remove", func(t *testing.T) {
		s := match.NewSelection(3)

		selected, changed := s.Toggle(101)
		assert.True(t, selected)
		assert.True(t, changed)
		assert.True(t, s.Contains(101))

		selected, changed = s.Toggle(101)
		assert.False(t, selected)
		assert.True(t, changed)
		assert.False(t, s.Contains(101))
	})

	t.Run("add at the bound is ignored", func(t *testing.T) {
		s := match.NewSelection(3)
		s.Toggle(101)
		s.Toggle(102)
		s.Toggle(103)

		selected, changed := s.Toggle(104)

		assert.False(t, selected)
		assert.False(t, changed)
		assert.Equal(t, 3, s.Size())
		assert.False(t, s.Contains(104))
	})

	t.Run("removal is always allowed at the bound", func(t *testing.T) {
		s := match.NewSelection(3)
		s.Toggle(101)
		s.Toggle(102)
		s.Toggle(103)

		selected, changed := s.Toggle(102)

		assert.False(t, selected)
		assert.True(t, changed)
		assert.Equal(t, 2, s.Size())
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		s := match.NewSelection(3)
		s.Toggle(105)
		s.Toggle(101)
		s.Toggle(103)

		assert.Equal(t, []int64{105, 101, 103}, s.IDs())

		// Removing the middle element keeps relative order of the rest.
		s.Toggle(101)
		assert.Equal(t, []int64{105, 103}, s.IDs())
	})
}

func TestSelectionCanCompare(t *testing.T) {
	s := match.NewSelection(3)
	assert.False(t, s.CanCompare())

	s.Toggle(101)
	assert.False(t, s.CanCompare())

	s.Toggle(102)
	assert.True(t, s.CanCompare())
}

func TestSelectionDefaults(t *testing.T) {
	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		s := match.NewSelection(0)
		assert.Equal(t, match.DefaultCompareLimit, s.Limit())

		s = match.NewSelection(-1)
		assert.Equal(t, match.DefaultCompareLimit, s.Limit())
	})

	t.Run("custom limit is honored", func(t *testing.T) {
		s := match.NewSelection(5)
		require.Equal(t, 5, s.Limit())

		for id := int64(1); id <= 6; id++ {
			s.Toggle(id)
		}
		assert.Equal(t, 5, s.Size())
	})
}

func TestReconstructSelection(t *testing.T) {
	s := match.ReconstructSelection(3, []int64{103, 101})

	assert.Equal(t, []int64{103, 101}, s.IDs())
	assert.Equal(t, 2, s.Size())
}

func TestSelectionIDsAreCopies(t *testing.T) {
	s := match.NewSelection(3)
	s.Toggle(101)

	ids := s.IDs()
	ids[0] = 999

	assert.Equal(t, []int64{101}, s.IDs())
}
