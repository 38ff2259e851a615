package booking

import "errors"

var ErrNonPositivePrice = errors.New("price per period must be positive")

// Service fee rate in basis points (5%).
const FeeRateBasisPoints int64 = 500

// PriceBreakdown is derived, never stored independently of a booking.
// Amounts are whole naira.
type PriceBreakdown struct {
	Base  int64
	Fee   int64
	Total int64
}

// NewPriceBreakdown derives the amounts for a lease of the given term:
// base = pricePerPeriod × multiplier, fee = 5% of base rounded half-up to
// the whole unit, total = base + fee. Pure and deterministic.
func NewPriceBreakdown(pricePerPeriod int64, term LeaseTerm) (PriceBreakdown, error) {
	if pricePerPeriod <= 0 {
		return PriceBreakdown{}, ErrNonPositivePrice
	}

	multiplier, err := term.Multiplier()
	if err != nil {
		return PriceBreakdown{}, err
	}

	base := pricePerPeriod * multiplier
	fee := roundHalfUpBasisPoints(base, FeeRateBasisPoints)

	return PriceBreakdown{
		Base:  base,
		Fee:   fee,
		Total: base + fee,
	}, nil
}

// OwnerShare is the amount attributed to the listing owner: the total minus
// the platform's service fee.
func (p PriceBreakdown) OwnerShare() int64 {
	return p.Total - p.Fee
}

func roundHalfUpBasisPoints(amount, rateBP int64) int64 {
	return (amount*rateBP + 5000) / 10000
}
