package main

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/randomx"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/service/headersync"
	"github.com/goodnatureofminers/blockinsight7000-headerval/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-headerval/pkg/safe"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"HEADERVAL_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       string `long:"network" env:"HEADERVAL_NETWORK" description:"network name" required:"true"`
	MetricsAddr   string `long:"metrics-addr" env:"HEADERVAL_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	GenesisTimestamp uint64 `long:"genesis-timestamp" env:"HEADERVAL_GENESIS_TIMESTAMP" description:"unix timestamp of the genesis header stored into an empty chain"`

	Consensus consensusConfig `group:"consensus" namespace:"consensus" env-namespace:"HEADERVAL_CONSENSUS"`
	RandomX   randomXConfig   `group:"randomx" namespace:"randomx" env-namespace:"HEADERVAL_RANDOMX"`
	Sync      syncConfig      `group:"sync" namespace:"sync" env-namespace:"HEADERVAL_SYNC"`
}

type consensusConfig struct {
	FutureTimeLimit      time.Duration `long:"future-time-limit" env:"FUTURE_TIME_LIMIT" description:"how far ahead of local time a header may be" default:"2h"`
	MedianTimestampCount int           `long:"median-timestamp-count" env:"MEDIAN_TIMESTAMP_COUNT" description:"ancestors considered by the median timestamp check" default:"11"`
	MaxParentBlobSize    uint32        `long:"max-parent-blob-size" env:"MAX_PARENT_BLOB_SIZE" description:"maximum merge-mined parent header size in bytes" default:"1024"`
	TargetBlockTime      time.Duration `long:"target-block-time" env:"TARGET_BLOCK_TIME" description:"per-algorithm target block interval" default:"4m"`
	DifficultyWindow     int           `long:"difficulty-window" env:"DIFFICULTY_WINDOW" description:"blocks in the difficulty retarget window" default:"90"`
	RandomXMinDifficulty uint64        `long:"randomx-min-difficulty" env:"RANDOMX_MIN_DIFFICULTY" description:"RandomX minimum and initial difficulty" default:"60000"`
	Sha3MinDifficulty    uint64        `long:"sha3-min-difficulty" env:"SHA3_MIN_DIFFICULTY" description:"SHA3 minimum and initial difficulty" default:"60000000"`
}

type randomXConfig struct {
	MaxVMs           int    `long:"max-vms" env:"MAX_VMS" description:"number of RandomX VMs kept alive" default:"5"`
	Argon2MemoryKiB  uint32 `long:"argon2-memory-kib" env:"ARGON2_MEMORY_KIB" description:"memory used to derive a VM key (0 keeps the built-in default)"`
	Argon2Iterations uint32 `long:"argon2-iterations" env:"ARGON2_ITERATIONS" description:"passes used to derive a VM key (0 keeps the built-in default)"`
	Argon2Threads    uint8  `long:"argon2-threads" env:"ARGON2_THREADS" description:"threads used to derive a VM key (0 keeps the built-in default)"`
}

type syncConfig struct {
	Workers        int           `long:"workers" env:"WORKERS" description:"concurrent header validations" default:"4"`
	CandidateLimit int           `long:"candidate-limit" env:"CANDIDATE_LIMIT" description:"pending headers read per iteration" default:"64"`
	IdleSleep      time.Duration `long:"idle-sleep" env:"IDLE_SLEEP" description:"pause when no candidate extends the tip" default:"2s"`
	MinBackoff     time.Duration `long:"min-backoff" env:"MIN_BACKOFF" description:"first retry delay after a storage failure" default:"500ms"`
	MaxBackoff     time.Duration `long:"max-backoff" env:"MAX_BACKOFF" description:"retry delay cap after storage failures" default:"30s"`
	OutcomeBatch   int           `long:"outcome-batch" env:"OUTCOME_BATCH" description:"validation outcomes per insert" default:"500"`
	OutcomeFlush   time.Duration `long:"outcome-flush" env:"OUTCOME_FLUSH" description:"maximum delay before outcomes are written" default:"5s"`
}

func (c consensusConfig) rules(maxVMs int) (consensus.Rules, error) {
	ftl, err := seconds("future time limit", c.FutureTimeLimit)
	if err != nil {
		return consensus.Rules{}, err
	}
	targetTime, err := seconds("target block time", c.TargetBlockTime)
	if err != nil {
		return consensus.Rules{}, err
	}

	retarget := func(min uint64) difficulty.RetargetParams {
		return difficulty.RetargetParams{
			TargetTime:        targetTime,
			WindowSize:        c.DifficultyWindow,
			InitialDifficulty: difficulty.FromUint64(min),
			MinDifficulty:     difficulty.FromUint64(min),
		}
	}
	rules := consensus.Rules{
		FutureTimeLimitSeconds: ftl,
		MedianTimestampCount:   c.MedianTimestampCount,
		MaxRandomXVMs:          maxVMs,
		MaxParentBlobSize:      c.MaxParentBlobSize,
		Retarget: map[model.PowAlgorithm]difficulty.RetargetParams{
			model.RandomX: retarget(c.RandomXMinDifficulty),
			model.Sha3:    retarget(c.Sha3MinDifficulty),
		},
	}
	if err := rules.Validate(); err != nil {
		return consensus.Rules{}, fmt.Errorf("consensus rules: %w", err)
	}
	return rules, nil
}

// seconds truncates d to whole seconds, rejecting anything below one.
func seconds(name string, d time.Duration) (uint64, error) {
	if d < time.Second {
		return 0, fmt.Errorf("%s %s is below one second", name, d)
	}
	return safe.Uint64(d / time.Second)
}

// argon2Params overlays the configured values on randomx.DefaultArgon2Params.
func (c randomXConfig) argon2Params() randomx.Argon2Params {
	params := randomx.DefaultArgon2Params
	if c.Argon2MemoryKiB > 0 {
		params.MemoryKiB = c.Argon2MemoryKiB
	}
	if c.Argon2Iterations > 0 {
		params.Iterations = c.Argon2Iterations
	}
	if c.Argon2Threads > 0 {
		params.Threads = c.Argon2Threads
	}
	return params
}

func (c syncConfig) service() headersync.Config {
	return headersync.Config{
		Workers:        c.Workers,
		CandidateLimit: c.CandidateLimit,
		IdleSleep:      c.IdleSleep,
		MinBackoff:     c.MinBackoff,
		MaxBackoff:     c.MaxBackoff,
		OutcomeBatch: batcher.Config{
			Size:     c.OutcomeBatch,
			Interval: c.OutcomeFlush,
		},
	}
}

// genesisHeader is the deterministic height zero header of a fresh chain.
func genesisHeader(timestamp uint64) *model.BlockHeader {
	return &model.BlockHeader{
		Version:   1,
		Height:    0,
		Timestamp: timestamp,
		Pow:       model.ProofOfWork{Algorithm: model.Sha3},
	}
}
