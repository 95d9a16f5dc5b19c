package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
)

// ChainTip returns the highest accepted header and its accumulated data.
// It returns chainstorage.ErrNotFound for an empty chain.
func (r *Repository) ChainTip(ctx context.Context) (_ *model.BlockHeader, _ *chainstorage.BlockHeaderAccumulatedData, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("chain_tip", err, start)
	}()

	query := `
SELECT ` + headerColumns + `,
	` + accumulatedColumns + `
FROM chain_headers FINAL
WHERE network = ?
ORDER BY height DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.network)
	if err != nil {
		return nil, nil, fmt.Errorf("query chain tip: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, nil, fmt.Errorf("iterate chain tip: %w", err)
		}
		err = chainstorage.ErrNotFound
		return nil, nil, err
	}

	var (
		hr headerRow
		ar accumulatedRow
	)
	if err = rows.Scan(append(hr.dest(), ar.dest()...)...); err != nil {
		return nil, nil, fmt.Errorf("scan chain tip: %w", err)
	}

	header, err := hr.toModel()
	if err != nil {
		return nil, nil, fmt.Errorf("decode chain tip: %w", err)
	}
	data, err := ar.toModel(header.Hash())
	if err != nil {
		return nil, nil, fmt.Errorf("decode chain tip: %w", err)
	}
	return header, data, nil
}
