package randomx

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// VM is a seeded proof-of-work hashing context. Implementations need not be
	// safe for concurrent use; the Factory serializes access to each VM.
	VM interface {
		CalculateHash(input []byte) ([]byte, error)
		Close()
	}

	// Metrics observes verifier cache activity.
	Metrics interface {
		ObserveAcquire(result string, err error, started time.Time)
		ObserveEviction()
		SetEntries(n int)
	}
)

// Constructor builds a VM for a seed. It is expected to be slow and memory heavy.
type Constructor func(seed []byte) (VM, error)

const (
	acquireHit    = "hit"
	acquireShared = "shared"
	acquireMiss   = "miss"
)
