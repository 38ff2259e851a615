package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the immutable record created by a successful payment. It is
// never mutated or deleted afterwards; the owner dashboard reads it for
// revenue and per-listing counts.
type Booking struct {
	id        uuid.UUID
	renterID  uuid.UUID
	listingID int64
	ownerID   uuid.UUID
	leaseTerm LeaseTerm
	breakdown PriceBreakdown
	status    Status
	createdAt time.Time
}

func NewBooking(
	renterID uuid.UUID,
	listingID int64,
	ownerID uuid.UUID,
	leaseTerm LeaseTerm,
	breakdown PriceBreakdown,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        uuid.New(),
		renterID:  renterID,
		listingID: listingID,
		ownerID:   ownerID,
		leaseTerm: leaseTerm,
		breakdown: breakdown,
		status:    StatusCompleted,
		createdAt: createdAt,
	}
}

func ReconstructBooking(
	id, renterID uuid.UUID,
	listingID int64,
	ownerID uuid.UUID,
	leaseTerm LeaseTerm,
	breakdown PriceBreakdown,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		renterID:  renterID,
		listingID: listingID,
		ownerID:   ownerID,
		leaseTerm: leaseTerm,
		breakdown: breakdown,
		status:    status,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) RenterID() uuid.UUID       { return b.renterID }
func (b *Booking) ListingID() int64          { return b.listingID }
func (b *Booking) OwnerID() uuid.UUID        { return b.ownerID }
func (b *Booking) LeaseTerm() LeaseTerm      { return b.leaseTerm }
func (b *Booking) Breakdown() PriceBreakdown { return b.breakdown }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
