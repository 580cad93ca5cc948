package regret

// DCFRPlus combines CFR+ clipping with DCFR discounting. Regrets of either
// sign accumulated through iteration t-1 are discounted by
// (t-1)^α / ((t-1)^α + 1), and the strategy sum by ((t-1)/t)^γ.
// Beta is unused.
type DCFRPlus struct {
	DiscountParams
}

// NewDCFRPlus returns a DCFR+ Minimizer with the given exponents.
func NewDCFRPlus(nActions int, params DiscountParams) (*Minimizer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return New(nActions, DCFRPlus{params})
}

// RegretDiscounts implements Schedule.
func (d DCFRPlus) RegretDiscounts(t int) (positive, negative, weight float32) {
	discount := previousDiscount(t, d.Alpha)
	return discount, discount, 1.0
}

// ClipRegrets implements Schedule.
func (d DCFRPlus) ClipRegrets() bool {
	return true
}

// StrategyDiscounts implements Schedule.
func (d DCFRPlus) StrategyDiscounts(t int) (discount, weight float32) {
	return previousStrategyDiscount(t, d.Gamma), 1.0
}

// Prediction implements Schedule.
func (d DCFRPlus) Prediction(t int) (bool, float32) {
	return false, 0.0
}

// Discount applied on iteration t to regret accumulated through t-1.
// There is nothing to discount on the first iteration.
func previousDiscount(t int, alpha float32) float32 {
	if t <= 1 {
		return 0.0
	}

	return discountFactor(t-1, alpha)
}

func previousStrategyDiscount(t int, gamma float32) float32 {
	if t <= 1 {
		return 0.0
	}

	return strategyDiscount(t-1, t, gamma)
}
