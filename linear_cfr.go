package regret

// LinearCFR weights the regret and strategy of iteration t by t.
type LinearCFR struct{}

// NewLinearCFR returns a Linear CFR Minimizer.
func NewLinearCFR(nActions int) (*Minimizer, error) {
	return New(nActions, LinearCFR{})
}

// RegretDiscounts implements Schedule.
func (LinearCFR) RegretDiscounts(t int) (positive, negative, weight float32) {
	return 1.0, 1.0, float32(t)
}

// ClipRegrets implements Schedule.
func (LinearCFR) ClipRegrets() bool {
	return false
}

// StrategyDiscounts implements Schedule.
func (LinearCFR) StrategyDiscounts(t int) (discount, weight float32) {
	return 1.0, float32(t)
}

// Prediction implements Schedule.
func (LinearCFR) Prediction(t int) (bool, float32) {
	return false, 0.0
}
