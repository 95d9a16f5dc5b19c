package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/randomx"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/service/headersync"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/validation"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger.With(zap.String("network", cfg.Network))); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("header validator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	rules, err := cfg.Consensus.rules(cfg.RandomX.MaxVMs)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(
		cfg.ClickhouseDSN,
		cfg.Network,
		rules,
		metrics.NewClickhouseRepository(cfg.Network),
		clickhouse.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close repository", zap.Error(err))
		}
	}()

	vms, err := randomx.NewFactory(
		rules.MaxRandomXVMs,
		randomx.NewArgon2Constructor(cfg.RandomX.argon2Params()),
		randomx.WithLogger(logger),
		randomx.WithMetrics(metrics.NewVMFactory(cfg.Network)),
	)
	if err != nil {
		return fmt.Errorf("init randomx factory: %w", err)
	}

	validator, err := validation.NewHeaderValidator(
		rules,
		repo,
		pow.NewVerifier(vms, rules.MaxParentBlobSize),
		logger,
		metrics.NewHeaderValidator(cfg.Network),
	)
	if err != nil {
		return fmt.Errorf("init header validator: %w", err)
	}

	svc, err := headersync.New(repo, validator, metrics.NewHeaderSync(cfg.Network), logger.Named("header_sync"), cfg.Sync.service())
	if err != nil {
		return err
	}
	if err := svc.EnsureGenesis(ctx, genesisHeader(cfg.GenesisTimestamp)); err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
