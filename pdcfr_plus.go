package regret

// PDCFRPlus is Predictive DCFR+: DCFR+ discounting and clipping, with the
// strategy computed from the accumulated regret discounted by
// t^α / (t^α + 1) plus the last instantaneous regret as a prediction.
// Beta is unused.
type PDCFRPlus struct {
	DiscountParams
}

// NewPDCFRPlus returns a PDCFR+ Minimizer with the given exponents.
func NewPDCFRPlus(nActions int, params DiscountParams) (*Minimizer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return New(nActions, PDCFRPlus{params})
}

// RegretDiscounts implements Schedule.
func (d PDCFRPlus) RegretDiscounts(t int) (positive, negative, weight float32) {
	discount := previousDiscount(t, d.Alpha)
	return discount, discount, 1.0
}

// ClipRegrets implements Schedule.
func (d PDCFRPlus) ClipRegrets() bool {
	return true
}

// StrategyDiscounts implements Schedule.
func (d PDCFRPlus) StrategyDiscounts(t int) (discount, weight float32) {
	return previousStrategyDiscount(t, d.Gamma), 1.0
}

// Prediction implements Schedule.
func (d PDCFRPlus) Prediction(t int) (bool, float32) {
	return true, discountFactor(t, d.Alpha)
}
