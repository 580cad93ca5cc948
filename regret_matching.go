package regret

// RegretMatching is the Schedule of plain regret matching: regrets
// accumulate without discounting and may go negative, and every
// iteration's strategy counts equally toward the average.
type RegretMatching struct{}

// NewRegretMatching returns a plain regret matching Minimizer.
func NewRegretMatching(nActions int) (*Minimizer, error) {
	return New(nActions, RegretMatching{})
}

// RegretDiscounts implements Schedule.
func (RegretMatching) RegretDiscounts(t int) (positive, negative, weight float32) {
	return 1.0, 1.0, 1.0
}

// ClipRegrets implements Schedule.
func (RegretMatching) ClipRegrets() bool {
	return false
}

// StrategyDiscounts implements Schedule.
func (RegretMatching) StrategyDiscounts(t int) (discount, weight float32) {
	return 1.0, 1.0
}

// Prediction implements Schedule.
func (RegretMatching) Prediction(t int) (bool, float32) {
	return false, 0.0
}
