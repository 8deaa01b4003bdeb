package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.True(found[4])
	a.False(found[5])
}

func TestCrypto_Float64(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	for i := 0; i < 1000; i++ {
		val := c.Float64()
		a.GreaterOrEqual(val, 0.0)
		a.Less(val, 1.0)
	}
}

func TestScript(t *testing.T) {
	a := assert.New(t)

	s := &Script{Ints: []int{0, 1, 7}, Floats: []float64{0.5, 0.99}}
	a.Equal(0, s.Intn(2))
	a.Equal(1, s.Intn(2))
	a.Equal(1, s.Intn(2)) // 7 % 2
	a.Equal(0, s.Intn(2)) // wraps around

	a.Equal(0.5, s.Float64())
	a.Equal(0.99, s.Float64())
	a.Equal(0.5, s.Float64())

	empty := &Script{}
	a.Equal(0, empty.Intn(10))
	a.Equal(0.0, empty.Float64())
}
