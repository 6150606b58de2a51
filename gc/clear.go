package gc

// ClearMemory tears down the runtime instance (spec.md §4.7): every block
// still on the list is finalized, in list order (reverse allocation order,
// since new blocks are prepended — spec.md §5), and the list is emptied.
// Calling ClearMemory again afterward is a no-op (spec.md §8, round-trip
// property 8): with the list already empty, the loop below does nothing.
// Allocating again after ClearMemory is permitted; duskgc's Collector
// doesn't need to re-init lazily since NewCollector already did the only
// initialization there is.
func (c *Collector) ClearMemory() error {
	if c == nil || !c.initialized {
		return ErrUninitialized
	}
	current := c.head
	freed := 0
	for current != nil {
		next := current.Next()
		c.deinitBlock(current)
		c.metrics.observeFree(current.Size)
		freed++
		current = next
	}
	c.head = nil
	c.count = 0
	c.bytesSinceCollection = 0
	c.metrics.setLiveBlocks(0)
	c.log.WithField("freed", freed).Debug("gc: clear_memory")
	return nil
}
