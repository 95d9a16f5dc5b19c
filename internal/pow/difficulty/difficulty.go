// Package difficulty implements proof-of-work difficulty values and target retargeting.
package difficulty

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

// ErrOverflow is returned when an arithmetic operation would exceed 256 bits.
var ErrOverflow = errors.New("difficulty overflow")

// Difficulty is a 256-bit unsigned amount of work. The zero value is zero difficulty.
type Difficulty struct {
	v uint256.Int
}

// FromUint64 returns a Difficulty holding n.
func FromUint64(n uint64) Difficulty {
	var d Difficulty
	d.v.SetUint64(n)
	return d
}

// FromBig converts a non-negative integer that fits in 256 bits.
func FromBig(b *big.Int) (Difficulty, error) {
	var d Difficulty
	if b.Sign() < 0 {
		return d, errors.New("negative difficulty")
	}
	if d.v.SetFromBig(b) {
		return Difficulty{}, ErrOverflow
	}
	return d, nil
}

// Max returns the largest representable difficulty.
func Max() Difficulty {
	var d Difficulty
	d.v.SetAllOne()
	return d
}

// FromHash derives the achieved difficulty of a proof-of-work hash: (2^256-1) / hash,
// reading the hash as a big-endian integer. A zero hash yields Max.
func FromHash(hash []byte) Difficulty {
	var scalar uint256.Int
	if len(hash) > 32 {
		hash = hash[:32]
	}
	scalar.SetBytes(hash)
	if scalar.IsZero() {
		return Max()
	}
	var d Difficulty
	d.v.SetAllOne()
	d.v.Div(&d.v, &scalar)
	return d
}

// Add returns d+o, or ErrOverflow when the sum does not fit in 256 bits.
func (d Difficulty) Add(o Difficulty) (Difficulty, error) {
	var sum Difficulty
	if _, overflow := sum.v.AddOverflow(&d.v, &o.v); overflow {
		return Difficulty{}, ErrOverflow
	}
	return sum, nil
}

// Cmp compares d and o and returns -1, 0 or +1.
func (d Difficulty) Cmp(o Difficulty) int {
	return d.v.Cmp(&o.v)
}

// Less reports whether d < o.
func (d Difficulty) Less(o Difficulty) bool {
	return d.v.Lt(&o.v)
}

func (d Difficulty) IsZero() bool {
	return d.v.IsZero()
}

// Uint64 returns the low 64 bits and whether the value fit entirely.
func (d Difficulty) Uint64() (uint64, bool) {
	return d.v.Uint64(), d.v.IsUint64()
}

func (d Difficulty) Big() *big.Int {
	return d.v.ToBig()
}

// String renders the value in decimal.
func (d Difficulty) String() string {
	return d.v.Dec()
}
