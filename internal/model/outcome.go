package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ValidationOutcome records the verdict reached for a candidate header.
type ValidationOutcome struct {
	Height      uint64
	Hash        chainhash.Hash
	Algorithm   PowAlgorithm
	Accepted    bool
	Reason      string
	ValidatedAt time.Time
}
