package peer

import (
	"github.com/flowforge/pegasus-core/dataflow"
)

// TaskState is one of the three observable states the surrounding
// cooperative scheduler polls a Worker for.
type TaskState int

const (
	// Ready means the dataflow has immediately runnable work.
	Ready TaskState = iota
	// NotReady means the dataflow is idle; the scheduler should poll again
	// later rather than busy-loop.
	NotReady
	// Finished means the task (or, for a Worker, every peer) has completed.
	Finished
)

func (s TaskState) String() string {
	switch s {
	case Ready:
		return "Ready"
	case NotReady:
		return "NotReady"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// workerTask is the two-variant state machine backing a Worker: either no
// plan has been installed yet (emptyTask), or a dataflow/schedule pair is
// driving execution (dataflowTask). Modelled as an interface plus two
// unexported implementations since Go has no sum-type sugar.
type workerTask interface {
	execute() (TaskState, error)
	checkReady() (TaskState, error)
}

type emptyTask struct{}

func (emptyTask) execute() (TaskState, error)    { return Finished, nil }
func (emptyTask) checkReady() (TaskState, error) { return Finished, nil }

type dataflowTask struct {
	df  dataflow.Dataflow
	sch dataflow.Schedule
}

func (t *dataflowTask) execute() (TaskState, error) {
	if err := t.sch.Step(t.df); err != nil {
		return Finished, NewJobExecError(err)
	}
	if t.df.CheckFinish() {
		if err := t.sch.Close(); err != nil {
			return Finished, NewJobExecError(err)
		}
		return Finished, nil
	}
	idle, err := t.df.IsIdle()
	if err != nil {
		return Finished, NewJobExecError(err)
	}
	if idle {
		return NotReady, nil
	}
	return Ready, nil
}

func (t *dataflowTask) checkReady() (TaskState, error) {
	if err := t.sch.TryNotify(); err != nil {
		return Finished, NewJobExecError(err)
	}
	idle, err := t.df.IsIdle()
	if err != nil {
		return Finished, NewJobExecError(err)
	}
	if idle {
		return NotReady, nil
	}
	return Ready, nil
}
