package regret

// PCFRPlus is Predictive CFR+. The strategy is computed optimistically,
// treating the last instantaneous regret as a prediction of the next one,
// and iteration t's strategy is weighted by t^2 in the average.
type PCFRPlus struct{}

// NewPCFRPlus returns a PCFR+ Minimizer.
func NewPCFRPlus(nActions int) (*Minimizer, error) {
	return New(nActions, PCFRPlus{})
}

func (PCFRPlus) RegretDiscounts(t int) (positive, negative, weight float32) {
	return 1.0, 1.0, 1.0
}

func (PCFRPlus) ClipRegrets() bool {
	return true
}

func (PCFRPlus) StrategyDiscounts(t int) (discount, weight float32) {
	x := float32(t)
	return 1.0, x * x
}

func (PCFRPlus) Prediction(t int) (bool, float32) {
	return true, 1.0
}
