package services

// Withdrawal fee tiers in centavos. Upper bounds are inclusive: an amount
// sitting exactly on a boundary pays the cheaper listed rate.
const (
	feeTier4Percent = 100_00      // up to 100.00
	feeTier3Percent = 1_000_00    // up to 1000.00
	feeTier2Percent = 5_000_00    // up to 5000.00
	feeTier1Percent = 100_000_00  // up to 100000.00
)

// FeePolicy contains the pure fee computation for withdrawals
type FeePolicy struct{}

// NewFeePolicy creates a new FeePolicy
func NewFeePolicy() *FeePolicy {
	return &FeePolicy{}
}

// Fee returns the withdrawal fee for amount. Deterministic, no side effects;
// integer arithmetic on centavos, fractions truncate.
func (p *FeePolicy) Fee(amount int64) int64 {
	switch {
	case amount <= feeTier4Percent:
		return amount * 4 / 100
	case amount <= feeTier3Percent:
		return amount * 3 / 100
	case amount <= feeTier2Percent:
		return amount * 2 / 100
	case amount <= feeTier1Percent:
		return amount * 1 / 100
	default:
		return 0
	}
}
