// Package gc implements the stop-the-world mark-and-sweep collector
// described by spec.md: an intrusive singly-linked allocation list, a
// type-dispatched recursive tracer rooted at the active fiber and at pinned
// blocks, and a linear sweeper that finalizes and unlinks whatever the
// tracer didn't reach. It is modeled, in naming and file layout, on the
// teacher's from-scratch mark-sweep runtime package, adapted to a
// library that cannot reach into the host process's own stack or
// scheduler: every root has to be either the active fiber or an explicit
// pin.
package gc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/duskvm/duskgc/gc/value"
)

// defaultThreshold is the auto-collection trigger spec.md §9 leaves
// unspecified, recommending "a sensible default (e.g., 1 MiB)".
const defaultThreshold = 1 << 20

// Collector owns the global block list, the allocation counter and the
// active-fiber root spec.md §5 describes as process-wide state. It is not
// safe for concurrent use — the spec's concurrency model is explicitly
// single-threaded, cooperative, with no internal synchronization.
type Collector struct {
	head  *value.Header
	count int // number of blocks currently linked; maintained incrementally for metrics/tests

	bytesSinceCollection uint64
	threshold            uint64

	active *value.Fiber

	interner Interner
	log      logrus.FieldLogger
	metrics  *metricsSet

	initialized  bool
	failNextAlloc bool
}

// CollectorOption configures a Collector at construction time.
type CollectorOption func(*Collector)

// WithThreshold overrides the default 1 MiB auto-collection threshold.
func WithThreshold(bytes uint64) CollectorOption {
	return func(c *Collector) { c.threshold = bytes }
}

// WithInterner installs the host's interning cache. Without this option the
// collector uses NopInterner, which is enough to exercise every invariant
// except interner-removal bookkeeping.
func WithInterner(i Interner) CollectorOption {
	return func(c *Collector) { c.interner = i }
}

// WithLogger overrides the collector's logrus logger. Pass a logger with
// its output discarded (e.g. logrus.New() with Out set to io.Discard) to
// silence collection diagnostics entirely.
func WithLogger(l logrus.FieldLogger) CollectorOption {
	return func(c *Collector) { c.log = l }
}

// WithMetrics registers the collector's Prometheus counters (cycles run,
// blocks freed, bytes freed, live blocks) under reg with the given metric
// namespace. Without this option the collector records no metrics.
func WithMetrics(reg prometheus.Registerer, namespace string) CollectorOption {
	return func(c *Collector) { c.metrics = newMetricsSet(reg, namespace) }
}

// NewCollector constructs a ready-to-use Collector. spec.md's C original
// performs this lazily on first allocation (dst_vm_cache == nil); duskgc
// makes initialization an explicit, idiomatic-Go constructor call instead,
// so a misused zero-value Collector fails fast with ErrUninitialized rather
// than allocating process-wide state implicitly behind the first allocation.
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		threshold:   defaultThreshold,
		interner:    NopInterner{},
		log:         logrus.StandardLogger(),
		initialized: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BytesSinceCollection returns the allocator's running counter toward the
// auto-collection threshold (spec.md §4.1, §4.5).
func (c *Collector) BytesSinceCollection() uint64 { return c.bytesSinceCollection }

// Threshold returns the configured auto-collection trigger point.
func (c *Collector) Threshold() uint64 { return c.threshold }

// ShouldCollect reports whether the allocator's counter has exceeded the
// configured threshold. spec.md §4.5 leaves the exact safe-point placement
// to the evaluator; duskgc only answers the question, it never calls
// Collect on the host's behalf.
func (c *Collector) ShouldCollect() bool {
	return c.bytesSinceCollection > c.threshold
}

// SetActiveFiber registers the fiber the next Collect call roots the mark
// phase from (spec.md §4.2 "Rooting", §4.5 step 1). Pass nil when no fiber
// is running.
func (c *Collector) SetActiveFiber(f *value.Fiber) { c.active = f }

// ActiveFiber returns the fiber currently registered as a root, or nil.
func (c *Collector) ActiveFiber() *value.Fiber { return c.active }

// FailNextAlloc makes the next allocation attempt fail with ErrOutOfMemory
// without linking a block, simulating the host allocator returning null
// (spec.md §4.1's fatal-OOM contract). Test-only hook; there's no real
// manual allocator underneath to fail.
func (c *Collector) FailNextAlloc() { c.failNextAlloc = true }

// Len reports the number of blocks currently linked into the collector's
// allocation list.
func (c *Collector) Len() int { return c.count }
