package memstore

import (
	"arbitat/internal/domain/listing"
	"arbitat/internal/domain/user"
	"arbitat/internal/pkg/clock"
	"arbitat/internal/pkg/errs"
	"arbitat/internal/pkg/password"

	"github.com/google/uuid"
)

// Stable demo identifiers so tokens survive process restarts in dev.
var (
	DemoRenterID  = uuid.MustParse("3f9c6a42-8f1d-4a8e-b7a4-5a2d90c1e7b3")
	DemoOwnerID   = uuid.MustParse("b4d1c9e8-2a6f-4d3b-9c74-0e8f5a617d29")
	DemoManagerID = uuid.MustParse("7a2e5b90-c4d8-4f61-8e3a-1b9f6c057d42")
)

const DemoPassword = "demo1234"

type seedListing struct {
	id          int64
	name        string
	location    string
	price       int64
	verified    bool
	images      []string
	amenities   []string
	ownerID     uuid.UUID
	description string
	distance    string
}

var seedListings = []seedListing{
	{
		id:       101,
		name:     "Sunny View Lodge",
		location: "Odim Road, 0.5km from UNN Main Gate",
		price:    150000,
		verified: true,
		images: []string{
			"/modern-student-lodge-exterior-sunny.jpg",
			"/student-room-interior-bed-desk.jpg",
			"/shared-kitchen-student-accommodation.jpg",
		},
		amenities:   []string{"Electricity", "Water", "Wi-Fi", "Security", "Parking"},
		ownerID:     DemoOwnerID,
		description: "Modern, well-maintained lodge with 24/7 security and reliable amenities. Perfect for serious students.",
		distance:    "0.5km from UNN",
	},
	{
		id:          102,
		name:        "Oakwood Hostel",
		location:    "Enugu-Onitsha Road, 1.2km from UNN",
		price:       120000,
		verified:    false,
		images:      []string{"/affordable-student-hostel-building.jpg", "/basic-student-room-bed.jpg"},
		amenities:   []string{"Water", "Electricity"},
		ownerID:     DemoOwnerID,
		description: "Affordable accommodation close to campus. Basic amenities provided.",
		distance:    "1.2km from UNN",
	},
	{
		id:       103,
		name:     "Green Valley Residence",
		location: "University Road, 0.8km from UNN Library",
		price:    180000,
		verified: true,
		images: []string{
			"/luxury-student-residence-green-surroundings.jpg",
			"/modern-student-apartment.png",
			"/student-lounge-common-area.jpg",
		},
		amenities:   []string{"Electricity", "Water", "Wi-Fi", "Security", "Gym", "Laundry"},
		ownerID:     DemoManagerID,
		description: "Premium student residence with gym and study lounges. All-inclusive amenities.",
		distance:    "0.8km from UNN",
	},
	{
		id:          104,
		name:        "Campus Edge Apartments",
		location:    "Stadium Road, 0.3km from UNN Sports Complex",
		price:       135000,
		verified:    true,
		images:      []string{"/student-apartment-building-modern.jpg", "/furnished-student-room.jpg"},
		amenities:   []string{"Electricity", "Water", "Wi-Fi", "Security"},
		ownerID:     DemoManagerID,
		description: "Conveniently located near sports facilities. Quiet and secure environment.",
		distance:    "0.3km from UNN",
	},
	{
		id:       105,
		name:     "Scholar's Haven",
		location: "Nsukka Town, 0.6km from UNN Main Campus",
		price:    165000,
		verified: true,
		images: []string{
			"/quiet-student-lodge-study-environment.jpg",
			"/student-study-room-desk-bookshelf.jpg",
			"/student-common-study-area.jpg",
		},
		amenities:   []string{"Electricity", "Water", "Wi-Fi", "Security", "Study Room"},
		ownerID:     DemoOwnerID,
		description: "Designed for focused students. Quiet hours enforced, dedicated study spaces.",
		distance:    "0.6km from UNN",
	},
}

type seedUser struct {
	id    uuid.UUID
	name  string
	email string
	role  user.Role
	phone string
}

var seedUsers = []seedUser{
	{id: DemoRenterID, name: "Demo Student", email: "student@demo.com", role: user.RoleRenter},
	{id: DemoOwnerID, name: "Demo Landlord", email: "landlord@demo.com", role: user.RoleOwner, phone: "+234 800 123 4567"},
	{id: DemoManagerID, name: "Property Manager", email: "manager@demo.com", role: user.RoleOwner, phone: "+234 800 765 4321"},
}

// SeedDemoData loads the demo catalog and accounts into the stores.
func SeedDemoData(listings *ListingStore, users *UserStore, clk clock.Clock) error {
	now := clk.Now()

	for _, sl := range seedListings {
		distance := sl.distance
		l := listing.ReconstructListing(
			sl.id,
			sl.name,
			sl.location,
			sl.price,
			sl.verified,
			sl.amenities,
			sl.images,
			sl.description,
			&distance,
			sl.ownerID,
			now,
		)
		if err := listings.put(l); err != nil {
			return errs.Wrap(err, "failed to seed listing")
		}
	}

	hash, err := password.HashPassword(DemoPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash demo password")
	}

	for _, su := range seedUsers {
		email, err := user.NewEmail(su.email)
		if err != nil {
			return errs.Wrap(err, "invalid seed email")
		}

		var phone *string
		if su.phone != "" {
			p := su.phone
			phone = &p
		}

		u := user.ReconstructUser(su.id, su.name, email, hash, su.role, phone, nil, true, now, now)
		if err := users.put(u); err != nil {
			return errs.Wrap(err, "failed to seed user")
		}
	}

	return nil
}
