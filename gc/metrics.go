package gc

import "github.com/prometheus/client_golang/prometheus"

// metricsSet is the collector's optional Prometheus instrumentation (see
// SPEC_FULL.md's DOMAIN STACK section). It is constructed lazily and left
// nil until a WithMetrics option supplies a registerer, so a host
// that never touches metrics pays no allocation or registration cost.
type metricsSet struct {
	cycles     prometheus.Counter
	blocksFreed prometheus.Counter
	bytesFreed prometheus.Counter
	liveBlocks prometheus.Gauge
}

func newMetricsSet(reg prometheus.Registerer, namespace string) *metricsSet {
	m := &metricsSet{
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "gc_cycles_total",
			Help: "Number of completed mark-sweep collection cycles.",
		}),
		blocksFreed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "gc_blocks_freed_total",
			Help: "Number of heap blocks finalized and unlinked by the sweeper.",
		}),
		bytesFreed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "gc_bytes_freed_total",
			Help: "Sum of Size across every block the sweeper has freed.",
		}),
		liveBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "gc_live_blocks",
			Help: "Number of blocks on the allocator's list after the last sweep.",
		}),
	}
	reg.MustRegister(m.cycles, m.blocksFreed, m.bytesFreed, m.liveBlocks)
	return m
}

func (m *metricsSet) observeCycle() {
	if m == nil {
		return
	}
	m.cycles.Inc()
}

func (m *metricsSet) observeFree(size uintptr) {
	if m == nil {
		return
	}
	m.blocksFreed.Inc()
	m.bytesFreed.Add(float64(size))
}

func (m *metricsSet) setLiveBlocks(n int) {
	if m == nil {
		return
	}
	m.liveBlocks.Set(float64(n))
}
