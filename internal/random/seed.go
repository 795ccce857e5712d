// Package random draws maze seeds.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math"
	"math/big"
)

var seedLimit = big.NewInt(math.MaxInt64)

// NewSeed draws a seed in [0, math.MaxInt64) from the operating system's
// entropy source. Seeds are printed and stored with runs, so they stay
// non-negative.
func NewSeed() (int64, error) {
	n, err := crand.Int(crand.Reader, seedLimit)
	if err != nil {
		return 0, fmt.Errorf("failed to draw maze seed: %w", err)
	}
	return n.Int64(), nil
}
