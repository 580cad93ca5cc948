package regret

// CFRPlus is regret matching+: identical to RegretMatching except that
// accumulated regrets are floored at zero after every update, so an action
// that becomes good again is played immediately.
type CFRPlus struct{}

// NewCFRPlus returns a CFR+ Minimizer.
func NewCFRPlus(nActions int) (*Minimizer, error) {
	return New(nActions, CFRPlus{})
}

func (CFRPlus) RegretDiscounts(t int) (positive, negative, weight float32) {
	return 1.0, 1.0, 1.0
}

func (CFRPlus) ClipRegrets() bool {
	return true // No negative regrets.
}

func (CFRPlus) StrategyDiscounts(t int) (discount, weight float32) {
	return 1.0, 1.0
}

func (CFRPlus) Prediction(t int) (bool, float32) {
	return false, 0.0
}
