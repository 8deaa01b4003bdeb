package rng

import (
	"crypto/rand"
	"math/big"
)

// float64Denom is 2^53, the largest power of two a float64 can represent exactly
const float64Denom = 1 << 53

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number from 0 < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Float64 returns a random number in [0, 1)
func (c Crypto) Float64() float64 {
	b, err := rand.Int(rand.Reader, big.NewInt(float64Denom))
	if err != nil {
		panic(err)
	}

	return float64(b.Int64()) / float64(float64Denom)
}
