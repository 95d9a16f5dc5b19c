package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
)

// InsertValidationOutcomes stores validation verdicts for auditing.
func (r *Repository) InsertValidationOutcomes(ctx context.Context, outcomes []model.ValidationOutcome) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_validation_outcomes", err, start)
	}()

	if len(outcomes) == 0 {
		return nil
	}

	const query = `
INSERT INTO header_validation_outcomes (
	network,
	height,
	hash,
	pow_algo,
	accepted,
	reason,
	validated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare validation outcomes batch: %w", err)
	}

	for _, o := range outcomes {
		if err = batch.Append(
			r.network,
			o.Height,
			o.Hash.String(),
			string(o.Algorithm),
			o.Accepted,
			o.Reason,
			o.ValidatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append validation outcome: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert validation outcomes: %w", err)
	}
	return nil
}
