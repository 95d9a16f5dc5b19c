package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
)

// InsertPendingHeaders queues candidate headers for validation. Headers with an
// unsupported pow algorithm are refused before anything is written.
func (r *Repository) InsertPendingHeaders(ctx context.Context, headers []*model.BlockHeader) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_pending_headers", err, start)
	}()

	if len(headers) == 0 {
		return nil
	}
	for _, header := range headers {
		if !header.Pow.Algorithm.IsValid() {
			err = fmt.Errorf("pending header %s: unsupported pow algorithm %q", header.ID(), header.Pow.Algorithm)
			return err
		}
	}

	query := `
INSERT INTO pending_headers (
	network,
	` + headerColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare pending headers batch: %w", err)
	}

	for _, header := range headers {
		if err = batch.Append(append([]any{r.network}, headerValues(header)...)...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append pending header: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert pending headers: %w", err)
	}
	return nil
}
