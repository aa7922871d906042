package peer

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// cancelMap is the process-wide table of per-job cancellation entries. Go
// mutexes don't carry Rust's poisoning semantics, so "poisoned" here means
// a panic escaped while the map was locked; removeEntry recovers from
// that, logs it, and never re-panics.
type cancelMap struct {
	mu      sync.Mutex
	entries map[uint64]struct{}
}

var defaultCancelMap = &cancelMap{entries: make(map[uint64]struct{})}

func (c *cancelMap) addEntry(jobID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[jobID] = struct{}{}
}

// removeEntry deletes the job's cancellation entry, logging rather than
// panicking if the map's lock is found in an inconsistent state.
func (c *cancelMap) removeEntry(jobID uint64, logger *logrus.Entry) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("JOB_CANCEL_MAP is poisoned")
		}
	}()
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, jobID)
}
