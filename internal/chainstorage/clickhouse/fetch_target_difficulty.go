package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
)

// FetchTargetDifficulty loads the difficulty window of algo for a header at
// height from the chain headers below it. Headers without a target, such as
// genesis, are not sampled.
func (r *Repository) FetchTargetDifficulty(ctx context.Context, algo model.PowAlgorithm, height uint64) (_ *difficulty.Window, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("fetch_target_difficulty", err, start)
	}()

	params, err := r.rules.RetargetParams(algo)
	if err != nil {
		return nil, err
	}

	const query = `
SELECT timestamp, target_difficulty
FROM chain_headers FINAL
WHERE network = ? AND pow_algo = ? AND height < ? AND target_difficulty > 0
ORDER BY height DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, r.network, string(algo), height, params.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("query target difficulty: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	newestFirst := make([]difficulty.Sample, 0, params.WindowSize)
	for rows.Next() {
		var (
			ts     uint64
			target big.Int
		)
		if err = rows.Scan(&ts, &target); err != nil {
			return nil, fmt.Errorf("scan target difficulty: %w", err)
		}
		d, convErr := difficulty.FromBig(&target)
		if convErr != nil {
			err = fmt.Errorf("decode target difficulty: %w", convErr)
			return nil, err
		}
		newestFirst = append(newestFirst, difficulty.Sample{Timestamp: ts, TargetDifficulty: d})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate target difficulty: %w", err)
	}

	window := difficulty.NewWindow(params)
	for i := len(newestFirst) - 1; i >= 0; i-- {
		window.Add(newestFirst[i].Timestamp, newestFirst[i].TargetDifficulty)
	}
	return window, nil
}
