package peer

import "fmt"

// WorkerId identifies a single peer within a job's cohort. Index is in
// [0, TotalPeers) and also doubles as the routing key used by the event
// channel and by thread-local worker identity during operator execution.
type WorkerId struct {
	JobID      uint64
	Index      uint32
	TotalPeers uint32
}

// String renders the id as "job/index-of-total", used in log lines.
func (w WorkerId) String() string {
	return fmt.Sprintf("%d/%d-of-%d", w.JobID, w.Index, w.TotalPeers)
}
