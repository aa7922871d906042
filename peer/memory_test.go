package peer

import (
	"github.com/prometheus/client_golang/prometheus/testutil"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(MemoryAccountantTestSuite))

type MemoryAccountantTestSuite struct{}

func (s *MemoryAccountantTestSuite) TestNewTaskRegistersGaugeAtOne(c *gc.C) {
	m := newMemoryAccountant()
	m.newTask(7)

	c.Assert(testutil.ToFloat64(m.gauge.WithLabelValues("7")), gc.Equals, 1.0)
}

func (s *MemoryAccountantTestSuite) TestNewTaskIsIdempotentPerJob(c *gc.C) {
	m := newMemoryAccountant()
	m.newTask(7)
	m.newTask(7)

	c.Assert(m.active, gc.HasLen, 1)
}

func (s *MemoryAccountantTestSuite) TestRemoveTaskDeletesLabelAndEntry(c *gc.C) {
	m := newMemoryAccountant()
	m.newTask(7)
	m.removeTask(7)

	c.Assert(m.active, gc.HasLen, 0)
	c.Assert(testutil.ToFloat64(m.gauge.WithLabelValues("7")), gc.Equals, 0.0)
}

func (s *MemoryAccountantTestSuite) TestRemoveTaskUnknownJobIsNoop(c *gc.C) {
	m := newMemoryAccountant()
	m.removeTask(99)

	c.Assert(m.active, gc.HasLen, 0)
}

func (s *MemoryAccountantTestSuite) TestCollectorExposesDefaultAccountantGauge(c *gc.C) {
	c.Assert(Collector(), gc.Equals, defaultAccountant.gauge)
}
