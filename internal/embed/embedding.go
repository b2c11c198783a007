package embed

import "math"

// Embedding is a fixed-length numeric vector representing a program unit.
// Embeddings are closed under addition and scalar multiplication; every
// aggregation step allocates a fresh vector, so no two results share
// backing storage.
type Embedding []float64

// Zero returns an all-zero embedding of the given dimension.
func Zero(dim int) Embedding {
	return make(Embedding, dim)
}

// Clone returns an independent copy.
func (e Embedding) Clone() Embedding {
	out := make(Embedding, len(e))
	copy(out, e)
	return out
}

// Add accumulates o into e element-wise. Both embeddings must share one
// dimension; the aggregator guarantees this by construction since every
// vector originates from a single vocabulary.
func (e Embedding) Add(o Embedding) {
	for i := range o {
		e[i] += o[i]
	}
}

// AddScaled accumulates s*o into e element-wise.
func (e Embedding) AddScaled(o Embedding, s float64) {
	for i := range o {
		e[i] += s * o[i]
	}
}

// Scale multiplies e by s in place.
func (e Embedding) Scale(s float64) {
	for i := range e {
		e[i] *= s
	}
}

// Equal reports exact element-wise equality.
func (e Embedding) Equal(o Embedding) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports element-wise equality within eps, absorbing
// floating-point reassociation differences between summation orders.
func (e Embedding) ApproxEqual(o Embedding, eps float64) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if math.Abs(e[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
