package gc

import (
	"github.com/sirupsen/logrus"

	"github.com/duskvm/duskgc/gc/value"
)

// sweep is the single linear pass over the allocation list spec.md §4.4
// describes: unlink and finalize unreachable blocks, clear the reachable
// bit on survivors. previous trails current so an unlink is O(1) and the
// list never needs a second pass or an owned copy.
//
// The reference implementation's sweep loop writes to a freed block's
// flags after calling free on it — a use-after-free spec.md §9 calls out
// explicitly as a bug, not a behavior to preserve. This loop only clears
// the reachable bit on the survivor branch, never after deinitBlock.
func (c *Collector) sweep() {
	var previous *value.Header
	current := c.head
	freed := 0
	live := 0

	for current != nil {
		next := current.Next()
		if current.Reachable() || current.Disabled() {
			current.ClearReachable()
			previous = current
			live++
		} else {
			c.deinitBlock(current)
			if previous != nil {
				previous.SetNext(next)
			} else {
				c.head = next
			}
			c.count--
			c.metrics.observeFree(current.Size)
			freed++
		}
		current = next
	}

	c.log.WithFields(logrus.Fields{"freed": freed, "live": live}).Debug("gc: sweep complete")
	c.metrics.setLiveBlocks(live)
}
