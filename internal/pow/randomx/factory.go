// Package randomx keeps a bounded cache of seeded proof-of-work VMs.
package randomx

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultMaxEntries is the number of VMs kept alive when no limit is configured.
const DefaultMaxEntries = 5

// ErrConstruction wraps failures to build a VM for a seed.
var ErrConstruction = errors.New("randomx vm construction failed")

type entry struct {
	key        string
	vm         VM
	lastAccess time.Time
	// leases counts holders and waiters; guarded by Factory.mu.
	leases int
	// mu gives a lease holder exclusive use of vm.
	mu sync.Mutex
}

type construction struct {
	done chan struct{}
	err  error
	// entry is set before done closes; waiters already hold a lease on it.
	entry *entry
	// waiters counts callers blocked on done; guarded by Factory.mu.
	waiters int
}

// Factory hands out exclusive leases on per-seed VMs. At most maxEntries VMs are
// cached; when full, the least recently used idle VM is evicted.
type Factory struct {
	maxEntries int
	construct  Constructor
	now        func() time.Time
	logger     *zap.Logger
	metrics    Metrics

	mu      sync.Mutex
	idle    *sync.Cond
	entries map[string]*entry
	pending map[string]*construction
}

// Option configures a Factory.
type Option func(*Factory)

// WithClock overrides the clock used for last-access timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		f.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

func WithMetrics(metrics Metrics) Option {
	return func(f *Factory) {
		f.metrics = metrics
	}
}

// NewFactory creates a Factory holding at most maxEntries VMs built by construct.
func NewFactory(maxEntries int, construct Constructor, opts ...Option) (*Factory, error) {
	if maxEntries < 1 {
		return nil, fmt.Errorf("max entries must be positive, got %d", maxEntries)
	}
	if construct == nil {
		return nil, errors.New("vm constructor is required")
	}
	f := &Factory{
		maxEntries: maxEntries,
		construct:  construct,
		now:        time.Now,
		logger:     zap.NewNop(),
		entries:    make(map[string]*entry, maxEntries),
		pending:    make(map[string]*construction),
	}
	f.idle = sync.NewCond(&f.mu)
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Acquire returns an exclusive lease on the VM for seed, building it if needed.
// The caller must Release the lease. Concurrent callers for an uncached seed
// share a single construction.
func (f *Factory) Acquire(seed []byte) (lease *Lease, err error) {
	started := time.Now()
	result := acquireHit
	defer func() {
		f.observeAcquire(result, err, started)
	}()

	key := string(seed)

	f.mu.Lock()
	if e, ok := f.entries[key]; ok {
		e.lastAccess = f.now()
		e.leases++
		f.mu.Unlock()
		return f.lock(e), nil
	}
	if c, ok := f.pending[key]; ok {
		result = acquireShared
		c.waiters++
		f.mu.Unlock()
		<-c.done
		if c.err != nil {
			return nil, c.err
		}
		return f.lock(c.entry), nil
	}

	result = acquireMiss
	c := &construction{done: make(chan struct{})}
	f.pending[key] = c
	f.mu.Unlock()

	vm, err := f.construct(seed)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConstruction, err)
		f.mu.Lock()
		delete(f.pending, key)
		c.err = err
		close(c.done)
		f.mu.Unlock()
		f.logger.Warn("vm construction failed", zap.Error(err))
		return nil, err
	}

	f.mu.Lock()
	evicted := f.makeRoom()
	e := &entry{key: key, vm: vm, lastAccess: f.now(), leases: 1 + c.waiters}
	f.entries[key] = e
	delete(f.pending, key)
	c.entry = e
	close(c.done)
	size := len(f.entries)
	f.mu.Unlock()

	for _, old := range evicted {
		old.vm.Close()
	}
	if f.metrics != nil {
		f.metrics.SetEntries(size)
	}
	f.logger.Debug("vm constructed", zap.Int("entries", size), zap.Int("evicted", len(evicted)))

	return f.lock(e), nil
}

// makeRoom evicts idle entries until one more fits, waiting for a lease to be
// released when every entry is in use. f.mu must be held.
func (f *Factory) makeRoom() []*entry {
	var evicted []*entry
	for len(f.entries) >= f.maxEntries {
		victim := f.oldestIdle()
		if victim == nil {
			f.idle.Wait()
			continue
		}
		delete(f.entries, victim.key)
		evicted = append(evicted, victim)
		if f.metrics != nil {
			f.metrics.ObserveEviction()
		}
	}
	return evicted
}

// oldestIdle picks the entry with the oldest access time among those without
// leases. Ties go to the smaller key. f.mu must be held.
func (f *Factory) oldestIdle() *entry {
	var oldest *entry
	for _, e := range f.entries {
		if e.leases > 0 {
			continue
		}
		if oldest == nil ||
			e.lastAccess.Before(oldest.lastAccess) ||
			(e.lastAccess.Equal(oldest.lastAccess) && e.key < oldest.key) {
			oldest = e
		}
	}
	return oldest
}

func (f *Factory) lock(e *entry) *Lease {
	e.mu.Lock()
	return &Lease{factory: f, entry: e}
}

func (f *Factory) release(e *entry) {
	e.mu.Unlock()
	f.mu.Lock()
	e.leases--
	if e.leases == 0 {
		f.idle.Broadcast()
	}
	f.mu.Unlock()
}

// Len returns the number of cached VMs.
func (f *Factory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Contains reports whether a VM for seed is cached without touching its access time.
func (f *Factory) Contains(seed []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[string(seed)]
	return ok
}

func (f *Factory) observeAcquire(result string, err error, started time.Time) {
	if f.metrics == nil {
		return
	}
	f.metrics.ObserveAcquire(result, err, started)
}

// Lease is exclusive access to a cached VM.
type Lease struct {
	factory *Factory
	entry   *entry
	once    sync.Once
}

// CalculateHash hashes input with the leased VM.
func (l *Lease) CalculateHash(input []byte) ([]byte, error) {
	return l.entry.vm.CalculateHash(input)
}

// Release returns the VM to the cache. It is safe to call more than once.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.factory.release(l.entry)
	})
}
