package match

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidDirection = errors.New("invalid swipe direction")

type Direction string

const (
	DirectionAccept Direction = "accept"
	DirectionReject Direction = "reject"
)

func NewDirection(s string) (Direction, error) {
	d := Direction(s)
	switch d {
	case DirectionAccept, DirectionReject:
		return d, nil
	default:
		return "", ErrInvalidDirection
	}
}

type Status string

const (
	StatusUndecided Status = "undecided"
	StatusMatched   Status = "matched"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// Book records one renter's terminal decisions against the catalog.
// A listing moves undecided→matched or undecided→rejected exactly once;
// both outcomes are terminal and a decided listing never re-surfaces.
type Book struct {
	renterID uuid.UUID
	statuses map[int64]Status
	matched  []int64
	rejected []int64
}

func NewBook(renterID uuid.UUID) *Book {
	return &Book{
		renterID: renterID,
		statuses: make(map[int64]Status),
	}
}

func ReconstructBook(renterID uuid.UUID, matched, rejected []int64) *Book {
	b := NewBook(renterID)
	for _, id := range matched {
		b.Decide(id, DirectionAccept)
	}
	for _, id := range rejected {
		b.Decide(id, DirectionReject)
	}
	return b
}

// Decide records a terminal decision. Returns false without changing state
// when the listing is already decided, making duplicate submissions harmless.
func (b *Book) Decide(listingID int64, dir Direction) bool {
	if _, decided := b.statuses[listingID]; decided {
		return false
	}

	switch dir {
	case DirectionAccept:
		b.statuses[listingID] = StatusMatched
		b.matched = append(b.matched, listingID)
	case DirectionReject:
		b.statuses[listingID] = StatusRejected
		b.rejected = append(b.rejected, listingID)
	default:
		return false
	}
	return true
}

func (b *Book) StatusOf(listingID int64) Status {
	if s, ok := b.statuses[listingID]; ok {
		return s
	}
	return StatusUndecided
}

func (b *Book) IsMatched(listingID int64) bool {
	return b.StatusOf(listingID) == StatusMatched
}

func (b *Book) MatchedIDs() []int64 {
	return append([]int64(nil), b.matched...)
}

func (b *Book) RejectedIDs() []int64 {
	return append([]int64(nil), b.rejected...)
}

// UndecidedFrom filters the catalog down to listings this renter has not
// decided on, preserving catalog order. The undecided pool is always derived
// this way so it cannot drift from the terminal sets.
func (b *Book) UndecidedFrom(catalog []int64) []int64 {
	pool := make([]int64, 0, len(catalog))
	for _, id := range catalog {
		if _, decided := b.statuses[id]; !decided {
			pool = append(pool, id)
		}
	}
	return pool
}

func (b *Book) RenterID() uuid.UUID { return b.renterID }
func (b *Book) DecidedCount() int   { return len(b.statuses) }
