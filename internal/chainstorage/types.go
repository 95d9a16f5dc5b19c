package chainstorage

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
)

// BlockchainBackend is the read side of chain storage needed by header validation.
type BlockchainBackend interface {
	// FetchBlockTimestamps returns the timestamps of up to the configured number
	// of headers ending at hash, newest first.
	FetchBlockTimestamps(ctx context.Context, hash chainhash.Hash) ([]uint64, error)
	// FetchTargetDifficulty returns the difficulty window of algo for a header at height.
	FetchTargetDifficulty(ctx context.Context, algo model.PowAlgorithm, height uint64) (*difficulty.Window, error)
}
