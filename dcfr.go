package regret

// DCFR is Discounted CFR. Accumulated positive and negative regrets and the
// strategy sum are discounted every iteration according to DiscountParams,
// so that early iterations have less influence than later ones.
type DCFR struct {
	DiscountParams
}

// NewDCFR returns a Discounted CFR Minimizer with the given exponents.
func NewDCFR(nActions int, params DiscountParams) (*Minimizer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return New(nActions, DCFR{params})
}

// RegretDiscounts implements Schedule.
func (d DCFR) RegretDiscounts(t int) (positive, negative, weight float32) {
	positive, negative, _ = d.GetDiscountFactors(t)
	return positive, negative, 1.0
}

// ClipRegrets implements Schedule.
func (d DCFR) ClipRegrets() bool {
	return false
}

// StrategyDiscounts implements Schedule.
func (d DCFR) StrategyDiscounts(t int) (discount, weight float32) {
	_, _, discount = d.GetDiscountFactors(t)
	return discount, 1.0
}

// Prediction implements Schedule.
func (d DCFR) Prediction(t int) (bool, float32) {
	return false, 0.0
}
