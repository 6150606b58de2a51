package gc

// Collect runs one full mark-and-sweep cycle (spec.md §4.5):
//
//  1. If an active fiber is registered, mark it.
//  2. Pinned roots need no traversal: the sweeper treats the disabled bit
//     as reachable regardless of tracing, so there is nothing to do here
//     beyond what sweep() already checks.
//  3. Run the sweep.
//  4. Reset the allocation counter.
//
// Collecting an empty heap is a no-op (spec.md §8, boundary behavior 9):
// with no blocks linked, sweep iterates zero times and the counter reset is
// the only visible effect.
func (c *Collector) Collect() error {
	if c == nil || !c.initialized {
		return ErrUninitialized
	}

	c.log.Debug("gc: collection starting")
	if c.active != nil {
		markFiber(c.active)
	}
	c.sweep()
	c.bytesSinceCollection = 0
	c.metrics.observeCycle()
	c.log.Debug("gc: collection finished")
	return nil
}
