package memstore

import (
	"context"
	"sync"

	"arbitat/internal/domain/match"

	"github.com/google/uuid"
)

// DecisionStore holds every renter's decision book. All mutation goes
// through Decide; readers get detached snapshots so nothing outside the
// store can touch live state.
type DecisionStore struct {
	mu    sync.RWMutex
	books map[uuid.UUID]*match.Book
}

func NewDecisionStore() *DecisionStore {
	return &DecisionStore{
		books: make(map[uuid.UUID]*match.Book),
	}
}

func (s *DecisionStore) Decide(_ context.Context, renterID uuid.UUID, listingID int64, dir match.Direction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[renterID]
	if !ok {
		book = match.NewBook(renterID)
		s.books[renterID] = book
	}
	return book.Decide(listingID, dir), nil
}

// Snapshot returns a detached copy of the renter's decision book. A renter
// with no recorded decisions gets an empty book, not an error.
func (s *DecisionStore) Snapshot(_ context.Context, renterID uuid.UUID) (*match.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[renterID]
	if !ok {
		return match.NewBook(renterID), nil
	}
	return match.ReconstructBook(renterID, book.MatchedIDs(), book.RejectedIDs()), nil
}

// MatchedCountByListing counts matches across all renters for each of the
// given listings. Listings nobody matched report zero.
func (s *DecisionStore) MatchedCountByListing(_ context.Context, listingIDs []int64) (map[int64]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int64]int, len(listingIDs))
	wanted := make(map[int64]struct{}, len(listingIDs))
	for _, id := range listingIDs {
		counts[id] = 0
		wanted[id] = struct{}{}
	}

	for _, book := range s.books {
		for _, id := range book.MatchedIDs() {
			if _, ok := wanted[id]; ok {
				counts[id]++
			}
		}
	}
	return counts, nil
}
