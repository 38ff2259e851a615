package memstore

import (
	"context"
	"sync"

	"arbitat/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingStore is the append-only booking log. Records are immutable once
// appended; both renter and owner views read from it.
type BookingStore struct {
	mu  sync.RWMutex
	log []*booking.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) Append(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = append(s.log, b)
	return nil
}

func (s *BookingStore) ListByRenter(_ context.Context, renterID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*booking.Booking
	for _, b := range s.log {
		if b.RenterID() == renterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BookingStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*booking.Booking
	for _, b := range s.log {
		if b.OwnerID() == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}
