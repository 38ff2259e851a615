package queries

import (
	"time"

	"arbitat/internal/domain/booking"
	"arbitat/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ListingView represents read-optimized listing data
type ListingView struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	PricePerPeriod int64     `json:"price_per_period"`
	Verified       bool      `json:"verified"`
	Amenities      []string  `json:"amenities"`
	Images         []string  `json:"images"`
	Description    string    `json:"description"`
	Distance       *string   `json:"distance,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// QuoteView is the server-derived price breakdown for a listing and term.
type QuoteView struct {
	ListingID   int64  `json:"listing_id"`
	ListingName string `json:"listing_name"`
	LeaseTerm   string `json:"lease_term"`
	Base        int64  `json:"base"`
	Fee         int64  `json:"fee"`
	Total       int64  `json:"total"`
}

type SelectionView struct {
	Listings   []ListingView `json:"listings"`
	Size       int           `json:"size"`
	Limit      int           `json:"limit"`
	CanCompare bool          `json:"can_compare"`
}

type FeedView struct {
	Listings     []ListingView `json:"listings"`
	MatchedCount int           `json:"matched_count"`
	DecidedCount int           `json:"decided_count"`
}

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	ListingID   int64     `json:"listing_id"`
	ListingName string    `json:"listing_name"`
	LeaseTerm   string    `json:"lease_term"`
	Base        int64     `json:"base"`
	Fee         int64     `json:"fee"`
	Total       int64     `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type OwnerListingView struct {
	ListingView
	Matches  int   `json:"matches"`
	Bookings int   `json:"bookings"`
	Revenue  int64 `json:"revenue"`
}

type OwnerDashboardView struct {
	ListingCount int                `json:"listing_count"`
	MatchCount   int                `json:"match_count"`
	BookingCount int                `json:"booking_count"`
	Revenue      int64              `json:"revenue"`
	Listings     []OwnerListingView `json:"listings"`
}

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Phone     *string    `json:"phone,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// NewListingView maps the domain entity onto the read model. copier matches
// the entity's getter methods against the view's field names.
func NewListingView(l *listing.Listing) (ListingView, error) {
	var v ListingView
	if err := copier.Copy(&v, l); err != nil {
		return ListingView{}, err
	}
	return v, nil
}

func NewListingViews(listings []*listing.Listing) ([]ListingView, error) {
	views := make([]ListingView, 0, len(listings))
	for _, l := range listings {
		v, err := NewListingView(l)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func NewBookingView(b *booking.Booking, listingName string) BookingView {
	return BookingView{
		ID:          b.ID(),
		ListingID:   b.ListingID(),
		ListingName: listingName,
		LeaseTerm:   b.LeaseTerm().String(),
		Base:        b.Breakdown().Base,
		Fee:         b.Breakdown().Fee,
		Total:       b.Breakdown().Total,
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
	}
}
