package booking

import "errors"

var ErrInvalidLeaseTerm = errors.New("invalid lease term")

// LeaseTerm is the rental-duration option chosen at payment time. The
// multiplier scales the listing's per-period price into the lease total.
type LeaseTerm string

const (
	TermShort    LeaseTerm = "short-term"    // 6 periods
	TermStandard LeaseTerm = "standard-term" // 12 periods
	TermFlexible LeaseTerm = "flexible"      // month-to-month
)

func NewLeaseTerm(s string) (LeaseTerm, error) {
	t := LeaseTerm(s)
	if !t.IsValid() {
		return "", ErrInvalidLeaseTerm
	}
	return t, nil
}

func (t LeaseTerm) String() string {
	return string(t)
}

func (t LeaseTerm) IsValid() bool {
	switch t {
	case TermShort, TermStandard, TermFlexible:
		return true
	default:
		return false
	}
}

// Multiplier returns the number of periods billed for the term. Unknown
// terms return an error rather than a silent default.
func (t LeaseTerm) Multiplier() (int64, error) {
	switch t {
	case TermShort:
		return 6, nil
	case TermStandard:
		return 12, nil
	case TermFlexible:
		return 1, nil
	default:
		return 0, ErrInvalidLeaseTerm
	}
}

type Status string

const (
	// StatusCompleted is the only status a booking can hold: the simulated
	// gateway approves unconditionally, so bookings exist only on success.
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}
