package peer

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// memoryAccountant tracks which jobs currently have at least one live peer
// in this process, exposing the count as a Prometheus gauge. A Worker
// registers its job on construction when it is the first peer to appear,
// and deregisters it once the peer guard reaches zero.
type memoryAccountant struct {
	mu     sync.Mutex
	active map[uint64]struct{}
	gauge  *prometheus.GaugeVec
}

var defaultAccountant = newMemoryAccountant()

func newMemoryAccountant() *memoryAccountant {
	return &memoryAccountant{
		active: make(map[uint64]struct{}),
		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pegasus",
			Subsystem: "worker",
			Name:      "active_jobs",
			Help:      "Jobs with at least one live peer in this process, by job id.",
		}, []string{"job_id"}),
	}
}

// Collector exposes the memory accountant's gauge for registration with a
// Prometheus registry by whatever front-end embeds this core.
func Collector() prometheus.Collector {
	return defaultAccountant.gauge
}

func (m *memoryAccountant) newTask(jobID uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.active[jobID]; exists {
		return
	}
	m.active[jobID] = struct{}{}
	m.gauge.WithLabelValues(strconv.FormatUint(jobID, 10)).Set(1)
}

func (m *memoryAccountant) removeTask(jobID uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.active[jobID]; !exists {
		return
	}
	delete(m.active, jobID)
	m.gauge.DeleteLabelValues(strconv.FormatUint(jobID, 10))
}
