package match

import "errors"

var (
	ErrNotMatched            = errors.New("listing is not in the matched set")
	ErrInsufficientSelection = errors.New("at least two listings must be selected for comparison")
)

const (
	DefaultCompareLimit = 3
	MinCompareSize      = 2
)

// Selection is the bounded shortlist of matched listings a renter lines up
// for side-by-side comparison. Insertion order is preserved; adds beyond the
// bound are ignored rather than rejected.
type Selection struct {
	limit int
	ids   []int64
}

func NewSelection(limit int) *Selection {
	if limit <= 0 {
		limit = DefaultCompareLimit
	}
	return &Selection{limit: limit}
}

func ReconstructSelection(limit int, ids []int64) *Selection {
	s := NewSelection(limit)
	for _, id := range ids {
		s.Toggle(id)
	}
	return s
}

// Toggle flips membership for the listing. Returns whether the listing is
// selected after the call and whether the call changed the selection; an add
// at the bound reports (false, false).
func (s *Selection) Toggle(listingID int64) (selected bool, changed bool) {
	for i, id := range s.ids {
		if id == listingID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false, true
		}
	}

	if len(s.ids) >= s.limit {
		return false, false
	}
	s.ids = append(s.ids, listingID)
	return true, true
}

func (s *Selection) Contains(listingID int64) bool {
	for _, id := range s.ids {
		if id == listingID {
			return true
		}
	}
	return false
}

// IDs returns the selected listings in insertion order.
func (s *Selection) IDs() []int64 {
	return append([]int64(nil), s.ids...)
}

func (s *Selection) Size() int  { return len(s.ids) }
func (s *Selection) Limit() int { return s.limit }

func (s *Selection) CanCompare() bool {
	return len(s.ids) >= MinCompareSize
}
