package commands

import (
	"context"

	"arbitat/internal/infra"
	"arbitat/internal/infra/kvstore"
	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionRepository interface {
	ToggleFavorite(ctx context.Context, userID uuid.UUID, listingID int64) (bool, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, p kvstore.Profile) error
	ClearProfile(ctx context.Context, userID uuid.UUID) error
}

type ToggleFavoriteResult struct {
	ListingID int64
	Favorite  bool
}

type FavoriteCommands interface {
	Toggle(ctx context.Context, renterID uuid.UUID, listingID int64) (*ToggleFavoriteResult, error)
}

type favoriteUseCaseImpl struct {
	listingRepo ListingRepository
	sessions    SessionRepository
}

func NewFavoriteUseCase(listingRepo ListingRepository, sessions SessionRepository) FavoriteCommands {
	return &favoriteUseCaseImpl{
		listingRepo: listingRepo,
		sessions:    sessions,
	}
}

func (f *favoriteUseCaseImpl) Toggle(ctx context.Context, renterID uuid.UUID, listingID int64) (*ToggleFavoriteResult, error) {
	if _, err := f.listingRepo.FindByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrListingNotFound)
		}
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	favorite, err := f.sessions.ToggleFavorite(ctx, renterID, listingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	return &ToggleFavoriteResult{ListingID: listingID, Favorite: favorite}, nil
}
