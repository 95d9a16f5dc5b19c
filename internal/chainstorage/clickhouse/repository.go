// Package clickhouse stores the validated header chain, pending candidates and
// validation outcomes in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/consensus"
	"go.uber.org/zap"
)

var _ chainstorage.BlockchainBackend = (*Repository)(nil)

type Repository struct {
	conn    Conn
	network string
	rules   consensus.Rules
	metrics Metrics
	logger  *zap.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for rows that are skipped while reading.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger.Named("clickhouse")
		}
	}
}

func NewRepository(dsn, network string, rules consensus.Rules, metrics Metrics, opts ...Option) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	r := &Repository{
		conn:    driverConn{conn: conn},
		network: network,
		rules:   rules,
		metrics: metrics,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// driverConn narrows clickhouse.Conn to Conn.
type driverConn struct {
	conn clickhouse.Conn
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
