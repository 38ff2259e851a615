package queries

import (
	"context"

	"arbitat/internal/domain/match"
	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInsufficientSelection = errs.New("at least two listings must be selected for comparison")

type DecisionReadStore interface {
	Snapshot(ctx context.Context, renterID uuid.UUID) (*match.Book, error)
	MatchedCountByListing(ctx context.Context, listingIDs []int64) (map[int64]int, error)
}

type SelectionReadStore interface {
	IDs(ctx context.Context, renterID uuid.UUID) ([]int64, error)
	Limit() int
}

type MatchQueries interface {
	Feed(ctx context.Context, renterID uuid.UUID) (*FeedView, error)
	Matches(ctx context.Context, renterID uuid.UUID) ([]ListingView, error)
	Selection(ctx context.Context, renterID uuid.UUID) (*SelectionView, error)
	Compare(ctx context.Context, renterID uuid.UUID) ([]ListingView, error)
}

type matchQueriesImpl struct {
	listingStore   ListingReadStore
	decisionStore  DecisionReadStore
	selectionStore SelectionReadStore
}

func NewMatchQueries(
	listingStore ListingReadStore,
	decisionStore DecisionReadStore,
	selectionStore SelectionReadStore,
) MatchQueries {
	return &matchQueriesImpl{
		listingStore:   listingStore,
		decisionStore:  decisionStore,
		selectionStore: selectionStore,
	}
}

// Feed returns the renter's undecided pool: the catalog minus everything
// already decided, in catalog order. It is derived on every read and never
// stored, so it cannot drift from the decision book.
func (q *matchQueriesImpl) Feed(ctx context.Context, renterID uuid.UUID) (*FeedView, error) {
	catalog, err := q.listingStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	book, err := q.decisionStore.Snapshot(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	ids := make([]int64, 0, len(catalog))
	byID := make(map[int64]int, len(catalog))
	for i, l := range catalog {
		ids = append(ids, l.ID())
		byID[l.ID()] = i
	}

	views := make([]ListingView, 0, len(catalog))
	for _, id := range book.UndecidedFrom(ids) {
		v, err := NewListingView(catalog[byID[id]])
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		views = append(views, v)
	}

	return &FeedView{
		Listings:     views,
		MatchedCount: len(book.MatchedIDs()),
		DecidedCount: book.DecidedCount(),
	}, nil
}

// Matches returns the renter's matched listings in the order they were
// accepted.
func (q *matchQueriesImpl) Matches(ctx context.Context, renterID uuid.UUID) ([]ListingView, error) {
	book, err := q.decisionStore.Snapshot(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	listings, err := q.listingStore.ListByIDs(ctx, book.MatchedIDs())
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return NewListingViews(listings)
}

func (q *matchQueriesImpl) Selection(ctx context.Context, renterID uuid.UUID) (*SelectionView, error) {
	ids, err := q.selectionStore.IDs(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	listings, err := q.listingStore.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views, err := NewListingViews(listings)
	if err != nil {
		return nil, err
	}

	return &SelectionView{
		Listings:   views,
		Size:       len(ids),
		Limit:      q.selectionStore.Limit(),
		CanCompare: len(ids) >= match.MinCompareSize,
	}, nil
}

// Compare returns the selected listings side by side, in selection order.
// Fewer than two selections is an error, not an empty result.
func (q *matchQueriesImpl) Compare(ctx context.Context, renterID uuid.UUID) ([]ListingView, error) {
	ids, err := q.selectionStore.IDs(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if len(ids) < match.MinCompareSize {
		return nil, ErrInsufficientSelection
	}

	listings, err := q.listingStore.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return NewListingViews(listings)
}
