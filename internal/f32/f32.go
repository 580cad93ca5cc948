// Package f32 implements the float32 vector kernels used by the regret
// minimizers. Level 1 BLAS operations are delegated to gonum's blas32.
//
// None of these functions allocate.
package f32

import (
	"gonum.org/v1/gonum/blas/blas32"
)

func vector(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Inc: 1, Data: x}
}

// DotUnitary is
//  for i, v := range x {
//  	sum += y[i] * v
//  }
//  return sum
func DotUnitary(x, y []float32) float32 {
	return blas32.Dot(vector(x), vector(y))
}

// AxpyUnitary is
//  for i, v := range x {
//  	y[i] += alpha * v
//  }
func AxpyUnitary(alpha float32, x, y []float32) {
	blas32.Axpy(alpha, vector(x), vector(y))
}

// ScalUnitary is
//  for i := range x {
//  	x[i] *= alpha
//  }
func ScalUnitary(alpha float32, x []float32) {
	blas32.Scal(alpha, vector(x))
}

// ScalUnitaryTo is
//  for i, v := range x {
//  	dst[i] = alpha * v
//  }
func ScalUnitaryTo(dst []float32, alpha float32, x []float32) {
	for i, v := range x {
		dst[i] = alpha * v
	}
}

// Sum is
//  var sum float32
//  for i := range x {
//      sum += x[i]
//  }
func Sum(x []float32) float32 {
	var sum float32
	for _, v := range x {
		sum += v
	}
	return sum
}

// Fill sets every element of x to alpha.
func Fill(alpha float32, x []float32) {
	for i := range x {
		x[i] = alpha
	}
}

// Uniform overwrites x with the uniform distribution over len(x) elements.
func Uniform(x []float32) {
	Fill(1.0/float32(len(x)), x)
}

// MakePositive clamps negative elements of v to zero.
func MakePositive(v []float32) {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0.0
		}
	}
}

// Normalize scales the non-negative values in p to sum to one.
// If they sum to zero p is reset to the uniform distribution.
// NaN values propagate.
func Normalize(p []float32) {
	total := Sum(p)
	if total <= 0 {
		Uniform(p)
		return
	}

	ScalUnitary(1.0/total, p)
}

// RegretMatch writes into dst the distribution proportional to
// the positive part of regrets, or uniform if no regret is positive.
func RegretMatch(dst, regrets []float32) {
	for i, r := range regrets {
		if r > 0 {
			dst[i] = r
		} else {
			dst[i] = 0.0
		}
	}

	Normalize(dst)
}
