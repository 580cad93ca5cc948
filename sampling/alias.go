// Package sampling implements constant-time sampling of actions from
// discrete probability distributions.
package sampling

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// ErrInvalidWeights is returned when an AliasTable is built from weights
// that do not describe a distribution: an empty slice, a negative or
// non-finite entry, or a non-positive total.
var ErrInvalidWeights = errors.New("invalid weights")

// Rand is a source of uniform randomness. *math/rand.Rand implements Rand.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// AliasTable samples indices in proportion to a fixed set of weights in O(1)
// time using Vose's alias method.
//
// A built table may be sampled concurrently from multiple goroutines.
// Reset requires exclusive access.
type AliasTable struct {
	prob  []float64
	alias []int

	// Worklists, retained across calls to Reset.
	small []int
	large []int
}

// NewAliasTable builds an AliasTable for the given weights.
func NewAliasTable(weights []float32) (*AliasTable, error) {
	t := &AliasTable{}
	if err := t.Reset(weights); err != nil {
		return nil, err
	}

	return t, nil
}

// Reset rebuilds the table for a new set of weights, reusing the existing
// buffers. It does not allocate if the table previously held at least
// len(weights) entries. On error the table is left unchanged.
func (t *AliasTable) Reset(weights []float32) error {
	total, err := checkWeights(weights)
	if err != nil {
		return err
	}

	n := len(weights)
	t.prob = extendFloat64(t.prob, n)
	t.alias = extendInt(t.alias, n)
	if cap(t.small) < n {
		t.small = make([]int, 0, n)
		t.large = make([]int, 0, n)
	}
	small, large := t.small[:0], t.large[:0]

	// Scale so that the average weight is 1.
	scale := float64(n) / total
	for i, w := range weights {
		p := float64(w) * scale
		t.prob[i] = p
		t.alias[i] = i
		if p < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		// Column s keeps prob[s] of its own mass and is topped up by l.
		t.alias[s] = l
		t.prob[l] -= 1.0 - t.prob[s]
		if t.prob[l] < 1.0 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Whatever remains is within rounding error of 1.
	for _, i := range large {
		t.prob[i] = 1.0
	}
	for _, i := range small {
		t.prob[i] = 1.0
	}

	t.small, t.large = small[:0], large[:0]
	return nil
}

// Len returns the number of indices in the table.
func (t *AliasTable) Len() int {
	return len(t.prob)
}

// Sample draws an index with probability proportional to its weight.
func (t *AliasTable) Sample(rng Rand) int {
	j := rng.Intn(len(t.prob))
	if rng.Float64() < t.prob[j] {
		return j
	}

	return t.alias[j]
}

// Distribution returns the probability with which Sample returns each index,
// as implied by the probability and alias tables.
func (t *AliasTable) Distribution() []float64 {
	n := len(t.prob)
	result := make([]float64, n)
	for j, p := range t.prob {
		result[j] += p / float64(n)
		result[t.alias[j]] += (1.0 - p) / float64(n)
	}

	return result
}

func checkWeights(weights []float32) (float64, error) {
	if len(weights) == 0 {
		return 0, errors.Wrap(ErrInvalidWeights, "no weights given")
	}

	var total float64
	for i, w := range weights {
		if w < 0 || math32.IsNaN(w) || math32.IsInf(w, 0) {
			return 0, errors.Wrapf(ErrInvalidWeights, "weight %d is %v", i, w)
		}
		total += float64(w)
	}

	if total <= 0 {
		return 0, errors.Wrapf(ErrInvalidWeights, "total weight is %v", total)
	}

	return total, nil
}

func extendFloat64(v []float64, n int) []float64 {
	if n > cap(v) {
		return make([]float64, n)
	}

	return v[:n]
}

func extendInt(v []int, n int) []int {
	if n > cap(v) {
		return make([]int, n)
	}

	return v[:n]
}
