package commands

import (
	"context"

	"arbitat/internal/domain/listing"
	reqdto "arbitat/internal/handler/dto/request"
	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

type ListingCommands interface {
	CreateListing(ctx context.Context, req reqdto.CreateListingRequest, ownerID uuid.UUID) (*listing.Listing, error)
}

type listingUseCaseImpl struct {
	listingRepo ListingRepository
}

func NewListingUseCase(listingRepo ListingRepository) ListingCommands {
	return &listingUseCaseImpl{listingRepo: listingRepo}
}

// CreateListing publishes a new listing for the owner. New listings always
// start unverified; verification is a separate administrative step. The
// catalog assigns the identifier.
func (l *listingUseCaseImpl) CreateListing(ctx context.Context, req reqdto.CreateListingRequest, ownerID uuid.UUID) (*listing.Listing, error) {
	draft, err := listing.NewListing(
		0,
		req.Name,
		req.Location,
		req.PricePerPeriod,
		false,
		req.Amenities,
		req.Images,
		req.Description,
		req.Distance,
		ownerID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := l.listingRepo.Create(ctx, draft)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}
	return created, nil
}
