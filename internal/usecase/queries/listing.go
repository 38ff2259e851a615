package queries

import (
	"context"

	"arbitat/internal/domain/booking"
	"arbitat/internal/domain/listing"
	"arbitat/internal/infra"
	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound  = errs.New("listing not found")
	ErrInvalidLeaseTerm = errs.New("invalid lease term")
	ErrQueryFailed      = errs.New("query failed")
)

type ListingReadStore interface {
	FindByID(ctx context.Context, id int64) (*listing.Listing, error)
	List(ctx context.Context) ([]*listing.Listing, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*listing.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*listing.Listing, error)
}

type ListingQueries interface {
	List(ctx context.Context) ([]ListingView, error)
	GetByID(ctx context.Context, id int64) (*ListingView, error)
	Quote(ctx context.Context, id int64, leaseTerm string) (*QuoteView, error)
}

type listingQueriesImpl struct {
	readStore ListingReadStore
}

func NewListingQueries(readStore ListingReadStore) ListingQueries {
	return &listingQueriesImpl{readStore: readStore}
}

func (q *listingQueriesImpl) List(ctx context.Context) ([]ListingView, error) {
	listings, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return NewListingViews(listings)
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id int64) (*ListingView, error) {
	l, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	v, err := NewListingView(l)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return &v, nil
}

// Quote derives the price breakdown without creating anything. The same
// derivation runs again at payment time; quotes carry no reservation.
func (q *listingQueriesImpl) Quote(ctx context.Context, id int64, leaseTerm string) (*QuoteView, error) {
	term, err := booking.NewLeaseTerm(leaseTerm)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLeaseTerm)
	}

	l, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	breakdown, err := booking.NewPriceBreakdown(l.PricePerPeriod(), term)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &QuoteView{
		ListingID:   l.ID(),
		ListingName: l.Name(),
		LeaseTerm:   term.String(),
		Base:        breakdown.Base,
		Fee:         breakdown.Fee,
		Total:       breakdown.Total,
	}, nil
}
