package commands

import (
	"context"

	"arbitat/internal/domain/match"
	"arbitat/internal/infra"
	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound        = errs.New("listing not found")
	ErrInvalidDirection       = errs.New("invalid decision direction")
	ErrInvalidSelection       = errs.New("listing not eligible for compare selection")
	ErrInvalidLeaseTerm       = errs.New("invalid lease term")
	ErrDomainValidation       = errs.New("domain validation error")
	ErrStorageOperationFailed = errs.New("storage operation failed")
)

type DecideResult struct {
	ListingID int64
	Status    match.Status
	Changed   bool
}

type ToggleCompareResult struct {
	ListingID int64
	Selected  bool
	Changed   bool
	Size      int
	Limit     int
}

type DecisionCommands interface {
	Decide(ctx context.Context, renterID uuid.UUID, listingID int64, direction string) (*DecideResult, error)
	ToggleCompare(ctx context.Context, renterID uuid.UUID, listingID int64) (*ToggleCompareResult, error)
}

type decisionUseCaseImpl struct {
	listingRepo   ListingRepository
	decisionRepo  DecisionRepository
	selectionRepo SelectionRepository
}

func NewDecisionUseCase(
	listingRepo ListingRepository,
	decisionRepo DecisionRepository,
	selectionRepo SelectionRepository,
) DecisionCommands {
	return &decisionUseCaseImpl{
		listingRepo:   listingRepo,
		decisionRepo:  decisionRepo,
		selectionRepo: selectionRepo,
	}
}

// Decide records an accept or reject for a listing. A listing that already
// carries a decision keeps it; the call reports Changed=false instead of
// failing so replays stay harmless.
func (d *decisionUseCaseImpl) Decide(ctx context.Context, renterID uuid.UUID, listingID int64, direction string) (*DecideResult, error) {
	dir, err := match.NewDirection(direction)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDirection)
	}

	if _, err := d.listingRepo.FindByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrListingNotFound)
		}
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	changed, err := d.decisionRepo.Decide(ctx, renterID, listingID, dir)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	book, err := d.decisionRepo.Snapshot(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	return &DecideResult{
		ListingID: listingID,
		Status:    book.StatusOf(listingID),
		Changed:   changed,
	}, nil
}

// ToggleCompare flips a matched listing in and out of the compare selection.
// Only matched listings are eligible; adding past the limit leaves the
// selection untouched and reports Changed=false.
func (d *decisionUseCaseImpl) ToggleCompare(ctx context.Context, renterID uuid.UUID, listingID int64) (*ToggleCompareResult, error) {
	book, err := d.decisionRepo.Snapshot(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}
	if !book.IsMatched(listingID) {
		return nil, ErrInvalidSelection
	}

	selected, changed, err := d.selectionRepo.Toggle(ctx, renterID, listingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	ids, err := d.selectionRepo.IDs(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	return &ToggleCompareResult{
		ListingID: listingID,
		Selected:  selected,
		Changed:   changed,
		Size:      len(ids),
		Limit:     d.selectionRepo.Limit(),
	}, nil
}
