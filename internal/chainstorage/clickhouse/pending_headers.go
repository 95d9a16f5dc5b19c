package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"go.uber.org/zap"
)

// PendingHeaders returns up to limit candidate headers at or above fromHeight,
// lowest height first. Rows that cannot be decoded are logged and skipped.
func (r *Repository) PendingHeaders(ctx context.Context, fromHeight uint64, limit int) (_ []*model.BlockHeader, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("pending_headers", err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	query := `
SELECT ` + headerColumns + `
FROM pending_headers FINAL
WHERE network = ? AND height >= ?
ORDER BY height, hash
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, r.network, fromHeight, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending headers: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	headers := make([]*model.BlockHeader, 0, limit)
	for rows.Next() {
		var hr headerRow
		if err = rows.Scan(hr.dest()...); err != nil {
			return nil, fmt.Errorf("scan pending header: %w", err)
		}
		header, convErr := hr.toModel()
		if convErr != nil {
			r.logger.Warn("skipping undecodable pending header",
				zap.Uint64("height", hr.Height),
				zap.String("hash", hr.Hash),
				zap.Error(convErr),
			)
			continue
		}
		headers = append(headers, header)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending headers: %w", err)
	}

	return headers, nil
}
