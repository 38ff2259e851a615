package payment

import (
	"context"
	"log/slog"
	"time"

	"arbitat/internal/pkg/clock"
	"arbitat/internal/pkg/errs"
	"arbitat/internal/usecase/commands"

	"github.com/google/uuid"
)

// Simulator stands in for a real payment processor: it waits a configurable
// latency and then approves every charge. Declines and retries belong to the
// processor integration that replaces this.
type Simulator struct {
	latency time.Duration
	clock   clock.Clock
}

func NewSimulator(latency time.Duration, clock clock.Clock) *Simulator {
	return &Simulator{latency: latency, clock: clock}
}

func (s *Simulator) Charge(ctx context.Context, req commands.ChargeRequest) (*commands.ChargeResult, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, errs.Wrap(ctx.Err(), "charge canceled")
		case <-timer.C:
		}
	}

	result := &commands.ChargeResult{
		Reference:   uuid.New(),
		ProcessedAt: s.clock.Now(),
	}

	slog.Info("simulated charge approved",
		"reference", result.Reference,
		"renter_id", req.RenterID,
		"listing_id", req.ListingID,
		"amount", req.Amount,
	)
	return result, nil
}
