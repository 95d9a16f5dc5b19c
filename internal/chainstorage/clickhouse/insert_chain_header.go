package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
)

// InsertChainHeader appends an accepted header and its accumulated data to the chain.
func (r *Repository) InsertChainHeader(ctx context.Context, header *model.BlockHeader, data *chainstorage.BlockHeaderAccumulatedData) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_chain_header", err, start)
	}()

	if header == nil || data == nil {
		err = errors.New("header and accumulated data are required")
		return err
	}
	if hash := header.Hash(); hash != data.Hash {
		err = fmt.Errorf("accumulated data %s does not belong to %s", data.Hash, header.ID())
		return err
	}

	query := `
INSERT INTO chain_headers (
	network,
	` + headerColumns + `,
	` + accumulatedColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare chain header batch: %w", err)
	}

	values := append([]any{r.network}, headerValues(header)...)
	values = append(values, accumulatedValues(data)...)
	if err = batch.Append(values...); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append chain header: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert chain header: %w", err)
	}
	return nil
}
