package memstore

import (
	"context"
	"sync"

	"arbitat/internal/domain/listing"
	"arbitat/internal/infra"
	"arbitat/internal/pkg/clock"

	"github.com/google/uuid"
)

// ListingStore is the in-process catalog. Listings keep stable integer
// identifiers and catalog (insertion) order; reads never reorder.
type ListingStore struct {
	mu     sync.RWMutex
	order  []int64
	byID   map[int64]*listing.Listing
	nextID int64
	clock  clock.Clock
}

func NewListingStore(clock clock.Clock) *ListingStore {
	return &ListingStore{
		byID:   make(map[int64]*listing.Listing),
		nextID: 101,
		clock:  clock,
	}
}

func (s *ListingStore) FindByID(_ context.Context, id int64) (*listing.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return l, nil
}

// List returns the full catalog in stable catalog order.
func (s *ListingStore) List(_ context.Context) ([]*listing.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*listing.Listing, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// ListByIDs resolves listings in the order the ids were given, not catalog
// order. A missing id fails the whole call.
func (s *ListingStore) ListByIDs(_ context.Context, ids []int64) ([]*listing.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*listing.Listing, 0, len(ids))
	for _, id := range ids {
		l, ok := s.byID[id]
		if !ok {
			return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *ListingStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*listing.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*listing.Listing
	for _, id := range s.order {
		if s.byID[id].IsOwnedBy(ownerID) {
			out = append(out, s.byID[id])
		}
	}
	return out, nil
}

// Create assigns the next catalog identifier and appends the listing to the
// catalog tail.
func (s *ListingStore) Create(_ context.Context, l *listing.Listing) (*listing.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	created := listing.ReconstructListing(
		id,
		l.Name(),
		l.Location(),
		l.PricePerPeriod(),
		l.Verified(),
		l.Amenities(),
		l.Images(),
		l.Description(),
		l.Distance(),
		l.OwnerID(),
		s.clock.Now(),
	)

	s.byID[id] = created
	s.order = append(s.order, id)
	return created, nil
}

// put inserts a fully-formed listing, used by seeding.
func (s *ListingStore) put(l *listing.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[l.ID()]; exists {
		return infra.WrapRepoErr("duplicate listing id", nil, infra.KindDuplicateKey)
	}
	s.byID[l.ID()] = l
	s.order = append(s.order, l.ID())
	if l.ID() >= s.nextID {
		s.nextID = l.ID() + 1
	}
	return nil
}
