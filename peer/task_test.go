package peer

import (
	"github.com/flowforge/pegasus-core/dataflow"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(TaskTestSuite))

type TaskTestSuite struct{}

func (s *TaskTestSuite) TestEmptyTaskIsAlwaysFinished(c *gc.C) {
	var task workerTask = emptyTask{}

	state, err := task.execute()
	c.Assert(err, gc.IsNil)
	c.Assert(state, gc.Equals, Finished)

	state, err = task.checkReady()
	c.Assert(err, gc.IsNil)
	c.Assert(state, gc.Equals, Finished)
}

type stepDataflow struct {
	finishAfter int
	steps       int
	idle        bool
}

func (d *stepDataflow) CheckFinish() bool     { return d.steps >= d.finishAfter }
func (d *stepDataflow) IsIdle() (bool, error) { return d.idle, nil }

type stepSchedule struct {
	df        *stepDataflow
	stepErr   error
	notifyErr error
	closed    bool
}

func (s *stepSchedule) Step(df dataflow.Dataflow) error {
	if s.stepErr != nil {
		return s.stepErr
	}
	s.df.steps++
	return nil
}
func (s *stepSchedule) TryNotify() error { return s.notifyErr }
func (s *stepSchedule) Close() error     { s.closed = true; return nil }

func (s *TaskTestSuite) TestDataflowTaskStepsUntilFinished(c *gc.C) {
	df := &stepDataflow{finishAfter: 2}
	sch := &stepSchedule{df: df}
	task := &dataflowTask{df: df, sch: sch}

	state, err := task.execute()
	c.Assert(err, gc.IsNil)
	c.Assert(state, gc.Equals, Ready)

	state, err = task.execute()
	c.Assert(err, gc.IsNil)
	c.Assert(state, gc.Equals, Finished)
	c.Assert(sch.closed, gc.Equals, true)
}

func (s *TaskTestSuite) TestDataflowTaskReportsIdleAsNotReady(c *gc.C) {
	df := &stepDataflow{finishAfter: 100, idle: true}
	sch := &stepSchedule{df: df}
	task := &dataflowTask{df: df, sch: sch}

	state, err := task.execute()
	c.Assert(err, gc.IsNil)
	c.Assert(state, gc.Equals, NotReady)
}

func (s *TaskTestSuite) TestDataflowTaskWrapsStepError(c *gc.C) {
	df := &stepDataflow{finishAfter: 1}
	sch := &stepSchedule{df: df, stepErr: errBoom}
	task := &dataflowTask{df: df, sch: sch}

	state, err := task.execute()
	c.Assert(state, gc.Equals, Finished)
	c.Assert(err, gc.ErrorMatches, ".*boom.*")
}

func (s *TaskTestSuite) TestCheckReadyDelegatesToSchedule(c *gc.C) {
	df := &stepDataflow{finishAfter: 100, idle: false}
	sch := &stepSchedule{df: df}
	task := &dataflowTask{df: df, sch: sch}

	state, err := task.checkReady()
	c.Assert(err, gc.IsNil)
	c.Assert(state, gc.Equals, Ready)
}
