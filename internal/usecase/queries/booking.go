package queries

import (
	"context"

	"arbitat/internal/domain/booking"
	"arbitat/internal/infra"
	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*booking.Booking, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*booking.Booking, error)
}

type BookingQueries interface {
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	bookingStore BookingReadStore
	listingStore ListingReadStore
}

func NewBookingQueries(bookingStore BookingReadStore, listingStore ListingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookingStore: bookingStore,
		listingStore: listingStore,
	}
}

func (q *bookingQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]BookingView, error) {
	bookings, err := q.bookingStore.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		name := ""
		l, err := q.listingStore.FindByID(ctx, b.ListingID())
		switch {
		case err == nil:
			name = l.Name()
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		views = append(views, NewBookingView(b, name))
	}
	return views, nil
}
