package commands

import (
	"context"

	"arbitat/internal/domain/booking"
	reqdto "arbitat/internal/handler/dto/request"
	"arbitat/internal/infra"
	"arbitat/internal/pkg/clock"
	"arbitat/internal/pkg/errs"
	"arbitat/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrPaymentFailed = errs.New("payment failed")

type SubmitPaymentResult struct {
	Booking   queries.BookingView
	Reference uuid.UUID
}

type PaymentCommands interface {
	SubmitPayment(ctx context.Context, req reqdto.SubmitPaymentRequest, renterID uuid.UUID) (*SubmitPaymentResult, error)
}

type paymentUseCaseImpl struct {
	listingRepo ListingRepository
	bookingRepo BookingRepository
	gateway     PaymentGateway
	clock       clock.Clock
}

func NewPaymentUseCase(
	listingRepo ListingRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	clock clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		clock:       clock,
	}
}

// SubmitPayment charges the derived total for a listing and records the
// resulting booking. The amount is always recomputed server-side from the
// catalog price and lease term; client-sent amounts are never trusted.
// Renters may book any listing directly, matching beforehand is optional.
func (p *paymentUseCaseImpl) SubmitPayment(ctx context.Context, req reqdto.SubmitPaymentRequest, renterID uuid.UUID) (*SubmitPaymentResult, error) {
	term, err := booking.NewLeaseTerm(req.LeaseTerm)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLeaseTerm)
	}

	l, err := p.listingRepo.FindByID(ctx, req.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrListingNotFound)
		}
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	breakdown, err := booking.NewPriceBreakdown(l.PricePerPeriod(), term)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	charge, err := p.gateway.Charge(ctx, ChargeRequest{
		RenterID:  renterID,
		ListingID: l.ID(),
		Amount:    breakdown.Total,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentFailed)
	}

	b := booking.NewBooking(renterID, l.ID(), l.OwnerID(), term, breakdown, p.clock.Now())
	if err := p.bookingRepo.Append(ctx, b); err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	return &SubmitPaymentResult{
		Booking:   queries.NewBookingView(b, l.Name()),
		Reference: charge.Reference,
	}, nil
}
