package headersync

import "time"

const (
	defaultWorkerCount    = 4
	defaultCandidateLimit = 64

	idleSleepDuration = 2 * time.Second
	minBackoff        = 500 * time.Millisecond
	maxBackoff        = 30 * time.Second

	outcomeFlushSize     = 500
	outcomeFlushInterval = 5 * time.Second
	outcomeFlushRPS      = 10

	supersededReason = "superseded by a stronger candidate"
)
