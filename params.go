package regret

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// DiscountParams are the exponents of Discounted CFR.
// See: https://arxiv.org/pdf/1809.04040.pdf
//
// On iteration t, accumulated positive regrets are multiplied by
// t^α / (t^α + 1), negative regrets by t^β / (t^β + 1),
// and the strategy sum by (t / (t+1))^γ.
type DiscountParams struct {
	Alpha float32 // Positive regret exponent.
	Beta  float32 // Negative regret exponent.
	Gamma float32 // Strategy sum exponent.
}

var (
	// LinearDiscounts is DCFR(1, 1, 1).
	LinearDiscounts = DiscountParams{Alpha: 1.0, Beta: 1.0, Gamma: 1.0}
	// RecommendedDiscounts is DCFR(3/2, 0, 2). From the paper:
	//   we found that setting α=3/2, β=0, and γ=2
	//   led to performance that was consistently stronger than CFR+
	RecommendedDiscounts = DiscountParams{Alpha: 1.5, Beta: 0.0, Gamma: 2.0}
	// PruningSafeDiscounts is DCFR(3/2, 1/2, 2), which does not discount
	// negative regrets so aggressively that regret-based pruning breaks.
	PruningSafeDiscounts = DiscountParams{Alpha: 1.5, Beta: 0.5, Gamma: 2.0}
	// DCFRPlusDiscounts are the default DCFR+ exponents. Beta is unused.
	DCFRPlusDiscounts = DiscountParams{Alpha: 1.5, Gamma: 4.0}
	// PDCFRPlusDiscounts are the default PDCFR+ exponents. Beta is unused.
	PDCFRPlusDiscounts = DiscountParams{Alpha: 2.3, Gamma: 5.0}
)

// GetDiscountFactors gets the DCFR discount factors for iteration t.
func (p DiscountParams) GetDiscountFactors(t int) (positive, negative, sum float32) {
	positive = discountFactor(t, p.Alpha)
	negative = discountFactor(t, p.Beta)
	sum = strategyDiscount(t, t+1, p.Gamma)
	return
}

// Validate checks that all exponents are finite and non-negative.
func (p DiscountParams) Validate() error {
	for _, x := range []struct {
		name  string
		value float32
	}{
		{"alpha", p.Alpha},
		{"beta", p.Beta},
		{"gamma", p.Gamma},
	} {
		if x.value < 0 || math32.IsNaN(x.value) || math32.IsInf(x.value, 0) {
			return errors.Wrapf(ErrInvalidDiscount, "%s=%v", x.name, x.value)
		}
	}

	return nil
}

// t^exp / (t^exp + 1)
func discountFactor(t int, exp float32) float32 {
	x := math32.Pow(float32(t), exp)
	return x / (x + 1.0)
}

// (num / denom) ^ gamma
func strategyDiscount(num, denom int, gamma float32) float32 {
	return math32.Pow(float32(num)/float32(denom), gamma)
}
