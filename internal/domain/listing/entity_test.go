//go:build unit

package listing_test

import (
	"strings"
	"testing"

	"arbitat/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValid(t *testing.T, mutate func(*args)) (*listing.Listing, error) {
	t.Helper()
	a := &args{
		name:     "Sunny View Lodge",
		location: "Odim Road",
		price:    150000,
	}
	if mutate != nil {
		mutate(a)
	}
	return listing.NewListing(101, a.name, a.location, a.price, true,
		[]string{"Water", "Wi-Fi"}, []string{"/a.jpg"}, "desc", nil, uuid.New())
}

type args struct {
	name     string
	location string
	price    int64
}

func TestNewListing(t *testing.T) {
	t.Run("valid listing", func(t *testing.T) {
		l, err := newValid(t, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(101), l.ID())
		assert.Equal(t, "Sunny View Lodge", l.Name())
		assert.Equal(t, int64(150000), l.PricePerPeriod())
		assert.True(t, l.Verified())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		l, err := newValid(t, func(a *args) { a.name = "  Sunny View Lodge  " })
		require.NoError(t, err)
		assert.Equal(t, "Sunny View Lodge", l.Name())
	})

	tests := []struct {
		name   string
		mutate func(*args)
		errIs  error
	}{
		{name: "empty name", mutate: func(a *args) { a.name = "" }, errIs: listing.ErrEmptyListingName},
		{name: "whitespace name", mutate: func(a *args) { a.name = "   " }, errIs: listing.ErrEmptyListingName},
		{name: "name too long", mutate: func(a *args) { a.name = strings.Repeat("a", 256) }, errIs: listing.ErrListingNameTooLong},
		{name: "empty location", mutate: func(a *args) { a.location = "" }, errIs: listing.ErrEmptyLocation},
		{name: "zero price", mutate: func(a *args) { a.price = 0 }, errIs: listing.ErrNonPositivePrice},
		{name: "negative price", mutate: func(a *args) { a.price = -1 }, errIs: listing.ErrNonPositivePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newValid(t, tt.mutate)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestListingHasAmenity(t *testing.T) {
	l, err := newValid(t, nil)
	require.NoError(t, err)

	assert.True(t, l.HasAmenity("Wi-Fi"))
	assert.True(t, l.HasAmenity("wi-fi"))
	assert.False(t, l.HasAmenity("Gym"))
}

func TestListingIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	l, err := listing.NewListing(101, "Lodge", "Road", 1000, false, nil, nil, "", nil, ownerID)
	require.NoError(t, err)

	assert.True(t, l.IsOwnedBy(ownerID))
	assert.False(t, l.IsOwnedBy(uuid.New()))
}

func TestListingGettersReturnCopies(t *testing.T) {
	l, err := newValid(t, nil)
	require.NoError(t, err)

	amenities := l.Amenities()
	amenities[0] = "changed"

	assert.Equal(t, "Water", l.Amenities()[0])
}
