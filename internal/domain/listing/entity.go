package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyListingName   = errors.New("listing name cannot be empty")
	ErrListingNameTooLong = errors.New("listing name is too long (max 255 characters)")
	ErrEmptyLocation      = errors.New("listing location cannot be empty")
	ErrNonPositivePrice   = errors.New("price per period must be positive")
)

const (
	MaxListingNameLength = 255
)

// Listing is a rentable property record. Immutable from the matching
// engine's perspective; the catalog supplies it.
type Listing struct {
	id             int64
	name           string
	location       string
	pricePerPeriod int64
	verified       bool
	amenities      []string
	images         []string
	description    string
	distance       *string
	ownerID        uuid.UUID
	createdAt      time.Time
}

func NewListing(
	id int64,
	name, location string,
	pricePerPeriod int64,
	verified bool,
	amenities, images []string,
	description string,
	distance *string,
	ownerID uuid.UUID,
) (*Listing, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyListingName
	}
	if len(name) > MaxListingNameLength {
		return nil, ErrListingNameTooLong
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}
	if pricePerPeriod <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Listing{
		id:             id,
		name:           name,
		location:       strings.TrimSpace(location),
		pricePerPeriod: pricePerPeriod,
		verified:       verified,
		amenities:      append([]string(nil), amenities...),
		images:         append([]string(nil), images...),
		description:    strings.TrimSpace(description),
		distance:       distance,
		ownerID:        ownerID,
	}, nil
}

func ReconstructListing(
	id int64,
	name, location string,
	pricePerPeriod int64,
	verified bool,
	amenities, images []string,
	description string,
	distance *string,
	ownerID uuid.UUID,
	createdAt time.Time,
) *Listing {
	return &Listing{
		id:             id,
		name:           name,
		location:       location,
		pricePerPeriod: pricePerPeriod,
		verified:       verified,
		amenities:      amenities,
		images:         images,
		description:    description,
		distance:       distance,
		ownerID:        ownerID,
		createdAt:      createdAt,
	}
}

func (l *Listing) HasAmenity(name string) bool {
	for _, a := range l.amenities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

func (l *Listing) IsOwnedBy(ownerID uuid.UUID) bool {
	return l.ownerID == ownerID
}

func (l *Listing) ID() int64             { return l.id }
func (l *Listing) Name() string          { return l.name }
func (l *Listing) Location() string      { return l.location }
func (l *Listing) PricePerPeriod() int64 { return l.pricePerPeriod }
func (l *Listing) Verified() bool        { return l.verified }
func (l *Listing) Amenities() []string   { return append([]string(nil), l.amenities...) }
func (l *Listing) Images() []string      { return append([]string(nil), l.images...) }
func (l *Listing) Description() string   { return l.description }
func (l *Listing) Distance() *string     { return l.distance }
func (l *Listing) OwnerID() uuid.UUID    { return l.ownerID }
func (l *Listing) CreatedAt() time.Time  { return l.createdAt }
