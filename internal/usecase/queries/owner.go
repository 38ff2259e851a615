package queries

import (
	"context"

	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

type OwnerQueries interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboardView, error)
	Bookings(ctx context.Context, ownerID uuid.UUID) ([]BookingView, error)
}

type ownerQueriesImpl struct {
	listingStore  ListingReadStore
	decisionStore DecisionReadStore
	bookingStore  BookingReadStore
}

func NewOwnerQueries(
	listingStore ListingReadStore,
	decisionStore DecisionReadStore,
	bookingStore BookingReadStore,
) OwnerQueries {
	return &ownerQueriesImpl{
		listingStore:  listingStore,
		decisionStore: decisionStore,
		bookingStore:  bookingStore,
	}
}

// Dashboard aggregates the owner's portfolio: per-listing interest (matches
// across all renters), completed bookings, and revenue. Revenue is the owner
// share of each booking, the total paid minus the platform fee.
func (q *ownerQueriesImpl) Dashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboardView, error) {
	listings, err := q.listingStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	ids := make([]int64, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID())
	}

	matchCounts, err := q.decisionStore.MatchedCountByListing(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	bookings, err := q.bookingStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	bookingCounts := make(map[int64]int, len(ids))
	revenueByListing := make(map[int64]int64, len(ids))
	var totalRevenue int64
	for _, b := range bookings {
		bookingCounts[b.ListingID()]++
		share := b.Breakdown().OwnerShare()
		revenueByListing[b.ListingID()] += share
		totalRevenue += share
	}

	views := make([]OwnerListingView, 0, len(listings))
	totalMatches := 0
	for _, l := range listings {
		lv, err := NewListingView(l)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		views = append(views, OwnerListingView{
			ListingView: lv,
			Matches:     matchCounts[l.ID()],
			Bookings:    bookingCounts[l.ID()],
			Revenue:     revenueByListing[l.ID()],
		})
		totalMatches += matchCounts[l.ID()]
	}

	return &OwnerDashboardView{
		ListingCount: len(listings),
		MatchCount:   totalMatches,
		BookingCount: len(bookings),
		Revenue:      totalRevenue,
		Listings:     views,
	}, nil
}

func (q *ownerQueriesImpl) Bookings(ctx context.Context, ownerID uuid.UUID) ([]BookingView, error) {
	bookings, err := q.bookingStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		name := ""
		if l, err := q.listingStore.FindByID(ctx, b.ListingID()); err == nil {
			name = l.Name()
		}
		views = append(views, NewBookingView(b, name))
	}
	return views, nil
}
