package randomx

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

// MaxSeedSize is the largest accepted seed.
const MaxSeedSize = 64

var datasetSalt = []byte("blockinsight7000/randomx/dataset")

// ErrInvalidSeed is returned for empty or oversized seeds.
var ErrInvalidSeed = errors.New("invalid seed")

// Argon2Params sizes the memory-hard dataset derivation.
type Argon2Params struct {
	MemoryKiB  uint32
	Iterations uint32
	Threads    uint8
}

// DefaultArgon2Params is tuned for a few hundred milliseconds of construction work.
var DefaultArgon2Params = Argon2Params{
	MemoryKiB:  256 * 1024,
	Iterations: 1,
	Threads:    4,
}

type argon2VM struct {
	key []byte
}

// NewArgon2Constructor returns a Constructor deriving the VM key from the seed
// with Argon2id and hashing inputs with keyed BLAKE2b-256.
func NewArgon2Constructor(params Argon2Params) Constructor {
	return func(seed []byte) (VM, error) {
		if len(seed) == 0 || len(seed) > MaxSeedSize {
			return nil, fmt.Errorf("%w: length %d", ErrInvalidSeed, len(seed))
		}
		if params.MemoryKiB == 0 || params.Iterations == 0 || params.Threads == 0 {
			return nil, errors.New("argon2 parameters must be positive")
		}
		key := argon2.IDKey(seed, datasetSalt, params.Iterations, params.MemoryKiB, params.Threads, blake2b.Size256)
		return &argon2VM{key: key}, nil
	}
}

func (vm *argon2VM) CalculateHash(input []byte) ([]byte, error) {
	if vm.key == nil {
		return nil, errors.New("vm closed")
	}
	h, err := blake2b.New256(vm.key)
	if err != nil {
		return nil, err
	}
	h.Write(input)
	return h.Sum(nil), nil
}

func (vm *argon2VM) Close() {
	vm.key = nil
}
