package memstore

import (
	"context"
	"sync"

	"arbitat/internal/domain/match"

	"github.com/google/uuid"
)

// SelectionStore keeps each renter's compare shortlist. The bound lives in
// the domain Selection; the store only scopes selections per renter.
type SelectionStore struct {
	mu         sync.Mutex
	limit      int
	selections map[uuid.UUID]*match.Selection
}

func NewSelectionStore(limit int) *SelectionStore {
	return &SelectionStore{
		limit:      limit,
		selections: make(map[uuid.UUID]*match.Selection),
	}
}

func (s *SelectionStore) Toggle(_ context.Context, renterID uuid.UUID, listingID int64) (selected bool, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selections[renterID]
	if !ok {
		sel = match.NewSelection(s.limit)
		s.selections[renterID] = sel
	}
	selected, changed = sel.Toggle(listingID)
	return selected, changed, nil
}

// IDs returns the renter's selection in insertion order.
func (s *SelectionStore) IDs(_ context.Context, renterID uuid.UUID) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selections[renterID]
	if !ok {
		return nil, nil
	}
	return sel.IDs(), nil
}

func (s *SelectionStore) Limit() int {
	return s.limit
}
