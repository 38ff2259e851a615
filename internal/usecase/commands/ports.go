package commands

import (
	"context"
	"time"

	"arbitat/internal/domain/booking"
	"arbitat/internal/domain/listing"
	"arbitat/internal/domain/match"

	"github.com/google/uuid"
)

type ListingRepository interface {
	FindByID(ctx context.Context, id int64) (*listing.Listing, error)
	List(ctx context.Context) ([]*listing.Listing, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*listing.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*listing.Listing, error)
	Create(ctx context.Context, l *listing.Listing) (*listing.Listing, error)
}

type DecisionRepository interface {
	Decide(ctx context.Context, renterID uuid.UUID, listingID int64, dir match.Direction) (bool, error)
	Snapshot(ctx context.Context, renterID uuid.UUID) (*match.Book, error)
	MatchedCountByListing(ctx context.Context, listingIDs []int64) (map[int64]int, error)
}

type SelectionRepository interface {
	Toggle(ctx context.Context, renterID uuid.UUID, listingID int64) (selected bool, changed bool, err error)
	IDs(ctx context.Context, renterID uuid.UUID) ([]int64, error)
	Limit() int
}

type BookingRepository interface {
	Append(ctx context.Context, b *booking.Booking) error
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*booking.Booking, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*booking.Booking, error)
}

type ChargeRequest struct {
	RenterID  uuid.UUID
	ListingID int64
	Amount    int64
}

type ChargeResult struct {
	Reference   uuid.UUID
	ProcessedAt time.Time
}

// PaymentGateway is the seam where a real processor would plug in. The
// bundled implementation simulates latency and always approves.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
