//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "arbitat/internal/handler/dto/request"
	"arbitat/internal/infra/memstore"
	"arbitat/internal/infra/payment"
	"arbitat/internal/pkg/clock"
	"arbitat/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	commands commands.PaymentCommands
	bookings *memstore.BookingStore
	clk      *clock.MockClock
}

func newPaymentFixture(t *testing.T) paymentFixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	listings := memstore.NewListingStore(clk)
	users := memstore.NewUserStore(clk)
	require.NoError(t, memstore.SeedDemoData(listings, users, clk))

	bookings := memstore.NewBookingStore()
	gateway := payment.NewSimulator(0, clk)

	return paymentFixture{
		commands: commands.NewPaymentUseCase(listings, bookings, gateway, clk),
		bookings: bookings,
		clk:      clk,
	}
}

func TestSubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the amount server-side and records one completed booking", func(t *testing.T) {
		f := newPaymentFixture(t)
		renterID := uuid.New()

		result, err := f.commands.SubmitPayment(ctx, reqdto.SubmitPaymentRequest{
			ListingID: 101,
			LeaseTerm: "standard-term",
		}, renterID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.Reference)
		assert.Equal(t, int64(1800000), result.Booking.Base)
		assert.Equal(t, int64(90000), result.Booking.Fee)
		assert.Equal(t, int64(1890000), result.Booking.Total)
		assert.Equal(t, "completed", result.Booking.Status)
		assert.Equal(t, "Sunny View Lodge", result.Booking.ListingName)

		recorded, err := f.bookings.ListByRenter(ctx, renterID)
		require.NoError(t, err)
		require.Len(t, recorded, 1)
		assert.Equal(t, memstore.DemoOwnerID, recorded[0].OwnerID())
	})

	t.Run("short term bills six periods", func(t *testing.T) {
		f := newPaymentFixture(t)

		result, err := f.commands.SubmitPayment(ctx, reqdto.SubmitPaymentRequest{
			ListingID: 101,
			LeaseTerm: "short-term",
		}, uuid.New())

		require.NoError(t, err)
		assert.Equal(t, int64(900000), result.Booking.Base)
		assert.Equal(t, int64(45000), result.Booking.Fee)
		assert.Equal(t, int64(945000), result.Booking.Total)
	})

	t.Run("invalid lease term", func(t *testing.T) {
		f := newPaymentFixture(t)

		_, err := f.commands.SubmitPayment(ctx, reqdto.SubmitPaymentRequest{
			ListingID: 101,
			LeaseTerm: "yearly",
		}, uuid.New())

		assert.ErrorIs(t, err, commands.ErrInvalidLeaseTerm)
	})

	t.Run("unknown listing", func(t *testing.T) {
		f := newPaymentFixture(t)

		_, err := f.commands.SubmitPayment(ctx, reqdto.SubmitPaymentRequest{
			ListingID: 999,
			LeaseTerm: "flexible",
		}, uuid.New())

		assert.ErrorIs(t, err, commands.ErrListingNotFound)
	})

	t.Run("booking is allowed without a prior match", func(t *testing.T) {
		f := newPaymentFixture(t)

		// No decision was ever recorded for this renter.
		result, err := f.commands.SubmitPayment(ctx, reqdto.SubmitPaymentRequest{
			ListingID: 102,
			LeaseTerm: "flexible",
		}, uuid.New())

		require.NoError(t, err)
		assert.Equal(t, int64(120000), result.Booking.Base)
	})
}

func TestSimulatorRespectsContext(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	gateway := payment.NewSimulator(time.Minute, clk)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Charge(ctx, commands.ChargeRequest{
		RenterID:  uuid.New(),
		ListingID: 101,
		Amount:    157500,
	})

	assert.ErrorIs(t, err, context.Canceled)
}
