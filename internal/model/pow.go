package model

import "fmt"

// PowAlgorithm identifies the proof-of-work algorithm a header was mined with.
type PowAlgorithm string

var (
	// RandomX is the merge-mined algorithm verified through a per-seed VM.
	RandomX PowAlgorithm = "randomx"
	// Sha3 is the standalone double SHA3-256 algorithm.
	Sha3 PowAlgorithm = "sha3"
)

// PowAlgorithms lists every supported algorithm in a stable order.
func PowAlgorithms() []PowAlgorithm {
	return []PowAlgorithm{RandomX, Sha3}
}

// ParsePowAlgorithm converts a stored or configured name into a PowAlgorithm.
func ParsePowAlgorithm(s string) (PowAlgorithm, error) {
	switch PowAlgorithm(s) {
	case RandomX:
		return RandomX, nil
	case Sha3:
		return Sha3, nil
	default:
		return "", fmt.Errorf("unsupported pow algorithm %q", s)
	}
}

// IsValid reports whether a is one of the supported algorithms.
func (a PowAlgorithm) IsValid() bool {
	return a == RandomX || a == Sha3
}

// ProofOfWork carries the algorithm tag and its algorithm-specific payload.
type ProofOfWork struct {
	Algorithm PowAlgorithm
	Data      []byte
}
