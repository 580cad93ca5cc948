package regret

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/go-regret/sampling"
)

var (
	// ErrInvalidActionCount is returned when constructing a minimizer
	// with fewer than one action.
	ErrInvalidActionCount = errors.New("invalid action count")
	// ErrDimensionMismatch is returned by UpdateRegret when the number
	// of rewards differs from the number of actions.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrUnknownVariant is returned for an unrecognized algorithm name.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInvalidDiscount is returned for negative or non-finite
	// discount exponents.
	ErrInvalidDiscount = errors.New("invalid discount parameters")
	// ErrInvalidWeights is returned when sampling from a strategy that
	// is not a distribution.
	ErrInvalidWeights = sampling.ErrInvalidWeights
)
