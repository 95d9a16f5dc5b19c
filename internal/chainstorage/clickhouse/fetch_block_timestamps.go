package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
)

// FetchBlockTimestamps returns the timestamps of up to MedianTimestampCount
// chain headers ending at hash, newest first.
func (r *Repository) FetchBlockTimestamps(ctx context.Context, hash chainhash.Hash) (_ []uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("fetch_block_timestamps", err, start)
	}()

	height, err := r.headerHeight(ctx, hash)
	if err != nil {
		return nil, err
	}

	const query = `
SELECT timestamp
FROM chain_headers FINAL
WHERE network = ? AND height <= ?
ORDER BY height DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, r.network, height, r.rules.MedianTimestampCount)
	if err != nil {
		return nil, fmt.Errorf("query block timestamps: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	timestamps := make([]uint64, 0, r.rules.MedianTimestampCount)
	for rows.Next() {
		var ts uint64
		if err = rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan block timestamp: %w", err)
		}
		timestamps = append(timestamps, ts)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block timestamps: %w", err)
	}

	return timestamps, nil
}

func (r *Repository) headerHeight(ctx context.Context, hash chainhash.Hash) (height uint64, err error) {
	const query = `
SELECT height
FROM chain_headers FINAL
WHERE network = ? AND hash = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.network, hash.String())
	if err != nil {
		return 0, fmt.Errorf("query header height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate header height: %w", err)
		}
		return 0, fmt.Errorf("header %s: %w", hash, chainstorage.ErrNotFound)
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan header height: %w", err)
	}
	return height, nil
}
