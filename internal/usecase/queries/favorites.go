package queries

import (
	"context"

	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionReadStore interface {
	Favorites(ctx context.Context, userID uuid.UUID) ([]int64, error)
}

type FavoriteQueries interface {
	List(ctx context.Context, renterID uuid.UUID) ([]ListingView, error)
}

type favoriteQueriesImpl struct {
	sessions     SessionReadStore
	listingStore ListingReadStore
}

func NewFavoriteQueries(sessions SessionReadStore, listingStore ListingReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{
		sessions:     sessions,
		listingStore: listingStore,
	}
}

// List resolves the renter's favorite ids against the catalog. Favorites
// pointing at listings that no longer exist are skipped, not surfaced as
// errors.
func (q *favoriteQueriesImpl) List(ctx context.Context, renterID uuid.UUID) ([]ListingView, error) {
	ids, err := q.sessions.Favorites(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views := make([]ListingView, 0, len(ids))
	for _, id := range ids {
		l, err := q.listingStore.FindByID(ctx, id)
		if err != nil {
			continue
		}
		v, err := NewListingView(l)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		views = append(views, v)
	}
	return views, nil
}
