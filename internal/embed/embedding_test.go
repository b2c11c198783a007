package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroAndClone(t *testing.T) {
	z := Zero(3)
	assert.Equal(t, Embedding{0, 0, 0}, z)

	e := Embedding{1, 2, 3}
	c := e.Clone()
	c[0] = 99
	assert.Equal(t, Embedding{1, 2, 3}, e, "Clone must not alias")
}

func TestAddAndAddScaled(t *testing.T) {
	e := Embedding{1, 2, 3}
	e.Add(Embedding{10, 20, 30})
	assert.Equal(t, Embedding{11, 22, 33}, e)

	e.AddScaled(Embedding{1, 1, 1}, 0.5)
	assert.Equal(t, Embedding{11.5, 22.5, 33.5}, e)
}

func TestScale(t *testing.T) {
	e := Embedding{2, 4}
	e.Scale(0.25)
	assert.Equal(t, Embedding{0.5, 1}, e)
}

func TestEqualAndApproxEqual(t *testing.T) {
	a := Embedding{1, 2}
	assert.True(t, a.Equal(Embedding{1, 2}))
	assert.False(t, a.Equal(Embedding{1, 2.0000001}))
	assert.False(t, a.Equal(Embedding{1}))

	assert.True(t, a.ApproxEqual(Embedding{1, 2.0000001}, 1e-6))
	assert.False(t, a.ApproxEqual(Embedding{1, 2.1}, 1e-6))
	assert.False(t, a.ApproxEqual(Embedding{1}, 1e-6))
}
