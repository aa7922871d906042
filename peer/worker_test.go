package peer

import (
	"time"

	"github.com/juju/clock/testclock"
	"github.com/opentracing/opentracing-go/mocktracer"
	gc "gopkg.in/check.v1"

	"github.com/flowforge/pegasus-core/dataflow"
	"github.com/flowforge/pegasus-core/tracer"
)

var _ = gc.Suite(new(WorkerTestSuite))

type WorkerTestSuite struct{}

type fakeOutput struct {
	notified []dataflow.EndOfScope
	closed   bool
}

func (o *fakeOutput) NotifyEnd(end dataflow.EndOfScope) error {
	o.notified = append(o.notified, end)
	return nil
}
func (o *fakeOutput) Close() error { o.closed = true; return nil }

type fakeOutputBuilder struct {
	output *fakeOutput
	port   dataflow.Port
}

func (b *fakeOutputBuilder) Source() dataflow.Source         { return struct{}{} }
func (b *fakeOutputBuilder) Build() (dataflow.Output, error) { return b.output, nil }

type fakeBuilder struct{ df *stepDataflow }

func (b *fakeBuilder) Build(sched dataflow.Schedule) (dataflow.Dataflow, error) { return b.df, nil }

// fakeCollaborators wires a worker up to an in-memory event channel hub and
// a dataflow that finishes after finishAfter steps.
func fakeCollaborators(finishAfter int, output *fakeOutput) (dataflow.Collaborators, *stepDataflow, *stepSchedule) {
	df := &stepDataflow{finishAfter: finishAfter}
	sch := &stepSchedule{df: df}

	return dataflow.Collaborators{
		ChannelBuilder: dataflow.NewLocalChannelHub(),
		BuilderFactory: func(jobID uint64, workerIndex, totalPeers uint32, emitter dataflow.EventEmitter) dataflow.Builder {
			return &fakeBuilder{df: df}
		},
		ScheduleFactory: func(emitter dataflow.EventEmitter, recv dataflow.Receiver) (dataflow.Schedule, error) {
			return sch, nil
		},
		OutputBuilderFactory: func(port dataflow.Port, batchSize, batchCapacity uint32) dataflow.OutputBuilder {
			return &fakeOutputBuilder{output: output, port: port}
		},
	}, df, sch
}

type collectingSink struct {
	pushed []int
	errs   []error
}

func (s *collectingSink) Push(item int)     { s.pushed = append(s.pushed, item) }
func (s *collectingSink) OnError(err error) { s.errs = append(s.errs, err) }

func (s *WorkerTestSuite) TestInstallFinalizesRootOutputWithFullPeerSet(c *gc.C) {
	output := &fakeOutput{}
	collaborators, _, _ := fakeCollaborators(1, output)

	conf := &JobConf{JobID: 1, TotalWorkers: 2, BatchSize: 4, BatchCapacity: 2}
	c.Assert(conf.Validate(), gc.IsNil)

	guard := NewGuard()
	sink := NewResultSink[int](&collectingSink{})
	span := mocktracer.New().StartSpan("install")

	w, err := NewWorker[int](conf, WorkerId{JobID: 1, Index: 0, TotalPeers: 2}, guard, sink, span, collaborators)
	c.Assert(err, gc.IsNil)

	var gotSource dataflow.Source
	err = w.Install(func(src dataflow.Source, s ResultSink[int]) error {
		gotSource = src
		return nil
	})
	c.Assert(err, gc.IsNil)
	c.Assert(gotSource, gc.Not(gc.IsNil))
	c.Assert(output.closed, gc.Equals, true)
	c.Assert(output.notified, gc.HasLen, 1)
	c.Assert(output.notified[0].Tag, gc.Equals, "Root")
	c.Assert(output.notified[0].Peers.All, gc.Equals, true)
	c.Assert(output.notified[0].Peers.TotalPeers, gc.Equals, uint32(2))
}

func (s *WorkerTestSuite) TestInstallSurfacesPlanErrorAsBuildJobError(c *gc.C) {
	collaborators, _, _ := fakeCollaborators(1, &fakeOutput{})
	conf := &JobConf{JobID: 2, TotalWorkers: 1, BatchSize: 4, BatchCapacity: 2}
	c.Assert(conf.Validate(), gc.IsNil)

	guard := NewGuard()
	sink := NewResultSink[int](&collectingSink{})
	span := mocktracer.New().StartSpan("install")

	w, err := NewWorker[int](conf, WorkerId{JobID: 2, Index: 0, TotalPeers: 1}, guard, sink, span, collaborators)
	c.Assert(err, gc.IsNil)

	err = w.Install(func(src dataflow.Source, s ResultSink[int]) error {
		return errBoom
	})
	var bje *BuildJobError
	c.Assert(errorsAs(err, &bje), gc.Equals, true)
}

// driveToFinish repeatedly calls Execute until it first reports Finished,
// returning the sequence of states observed.
func driveToFinish(w interface{ Execute() TaskState }, maxSteps int) []TaskState {
	var states []TaskState
	for i := 0; i < maxSteps; i++ {
		state := w.Execute()
		states = append(states, state)
		if state == Finished {
			break
		}
	}
	return states
}

func (s *WorkerTestSuite) TestLastPeerToFinishObservesFinishedOthersObserveNotReady(c *gc.C) {
	guard := NewGuard()
	conf := &JobConf{JobID: 10, TotalWorkers: 2, BatchSize: 4, BatchCapacity: 2}
	c.Assert(conf.Validate(), gc.IsNil)

	collab0, _, _ := fakeCollaborators(1, &fakeOutput{})
	collab1, _, _ := fakeCollaborators(1, &fakeOutput{})

	sink := NewResultSink[int](&collectingSink{})
	tracer := mocktracer.New()

	w0, err := NewWorker[int](conf, WorkerId{JobID: 10, Index: 0, TotalPeers: 2}, guard, sink, tracer.StartSpan("w0"), collab0)
	c.Assert(err, gc.IsNil)
	c.Assert(w0.Install(noopPlan), gc.IsNil)

	w1, err := NewWorker[int](conf, WorkerId{JobID: 10, Index: 1, TotalPeers: 2}, guard, sink, tracer.StartSpan("w1"), collab1)
	c.Assert(err, gc.IsNil)
	c.Assert(w1.Install(noopPlan), gc.IsNil)

	c.Assert(guard.Load(), gc.Equals, int64(2))

	state0 := w0.Execute()
	c.Assert(state0, gc.Equals, NotReady)
	c.Assert(guard.Load(), gc.Equals, int64(1), gc.Commentf("first finisher must not be the one to observe guard==0"))

	state1 := w1.Execute()
	c.Assert(state1, gc.Equals, Finished)
	c.Assert(guard.Load(), gc.Equals, int64(0))
}

func noopPlan(src dataflow.Source, sink ResultSink[int]) error { return nil }

func (s *WorkerTestSuite) TestExecuteCancelledByTimeLimitNeverDecrementsGuard(c *gc.C) {
	clk := testclock.NewClock(time.Unix(0, 0))
	conf := &JobConf{JobID: 20, TotalWorkers: 1, BatchSize: 4, BatchCapacity: 2, TimeLimitMs: 10, Clock: clk}
	c.Assert(conf.Validate(), gc.IsNil)

	guard := NewGuard()
	collaborators, _, _ := fakeCollaborators(100, &fakeOutput{})
	delegate := &collectingSink{}
	sink := NewResultSink[int](delegate)

	w, err := NewWorker[int](conf, WorkerId{JobID: 20, Index: 0, TotalPeers: 1}, guard, sink, mocktracer.New().StartSpan("w"), collaborators)
	c.Assert(err, gc.IsNil)
	c.Assert(w.Install(noopPlan), gc.IsNil)
	c.Assert(guard.Load(), gc.Equals, int64(1))

	clk.Advance(11 * time.Millisecond)

	state := w.Execute()
	c.Assert(state, gc.Equals, Finished)
	c.Assert(guard.Load(), gc.Equals, int64(1), gc.Commentf("cancellation must not decrement the guard; Close() accounts for it"))
	c.Assert(sink.CancelHook(), gc.Equals, true)
}

func (s *WorkerTestSuite) TestExecuteErrorDeliversToSinkAndFinishes(c *gc.C) {
	conf := &JobConf{JobID: 30, TotalWorkers: 1, BatchSize: 4, BatchCapacity: 2}
	c.Assert(conf.Validate(), gc.IsNil)

	guard := NewGuard()
	collaborators, df, sch := fakeCollaborators(1, &fakeOutput{})
	sch.stepErr = errBoom
	_ = df

	delegate := &collectingSink{}
	sink := NewResultSink[int](delegate)

	w, err := NewWorker[int](conf, WorkerId{JobID: 30, Index: 0, TotalPeers: 1}, guard, sink, mocktracer.New().StartSpan("w"), collaborators)
	c.Assert(err, gc.IsNil)
	c.Assert(w.Install(noopPlan), gc.IsNil)

	state := w.Execute()
	c.Assert(state, gc.Equals, Finished)
	c.Assert(delegate.errs, gc.HasLen, 1)
	c.Assert(guard.Load(), gc.Equals, int64(1), gc.Commentf("error path doesn't decrement; Close() accounts for it"))
}

func (s *WorkerTestSuite) TestCheckReadyFinishedOnceAllPeersDone(c *gc.C) {
	conf := &JobConf{JobID: 40, TotalWorkers: 1, BatchSize: 4, BatchCapacity: 2}
	c.Assert(conf.Validate(), gc.IsNil)

	guard := NewGuard()
	collaborators, _, _ := fakeCollaborators(1, &fakeOutput{})
	sink := NewResultSink[int](&collectingSink{})

	w, err := NewWorker[int](conf, WorkerId{JobID: 40, Index: 0, TotalPeers: 1}, guard, sink, mocktracer.New().StartSpan("w"), collaborators)
	c.Assert(err, gc.IsNil)
	c.Assert(w.Install(noopPlan), gc.IsNil)

	c.Assert(w.Execute(), gc.Equals, Finished)
	c.Assert(w.CheckReady(), gc.Equals, Finished)
}

func (s *WorkerTestSuite) TestCloseDeregistersOnlyWhenGuardIsZero(c *gc.C) {
	conf := &JobConf{JobID: 50, TotalWorkers: 1, BatchSize: 4, BatchCapacity: 2}
	c.Assert(conf.Validate(), gc.IsNil)

	guard := NewGuard()
	collaborators, _, _ := fakeCollaborators(1, &fakeOutput{})
	sink := NewResultSink[int](&collectingSink{})

	w, err := NewWorker[int](conf, WorkerId{JobID: 50, Index: 0, TotalPeers: 1}, guard, sink, mocktracer.New().StartSpan("w"), collaborators)
	c.Assert(err, gc.IsNil)
	c.Assert(w.Install(noopPlan), gc.IsNil)
	_, active := defaultAccountant.active[conf.JobID]
	c.Assert(active, gc.Equals, true, gc.Commentf("job must stay registered while the guard is non-zero"))
	c.Assert(w.Execute(), gc.Equals, Finished)

	w.Close()
	_, active = defaultAccountant.active[conf.JobID]
	c.Assert(active, gc.Equals, false, gc.Commentf("Close with the guard at zero must deregister the job"))
	// Second Close (e.g. from a deferred caller after an earlier explicit
	// call) must not panic even though the job is already deregistered.
	w.Close()
}

func (s *WorkerTestSuite) TestNewWorkerFromTracerStartsItsOwnSpan(c *gc.C) {
	conf := &JobConf{JobID: 60, TotalWorkers: 1, BatchSize: 4, BatchCapacity: 2}
	c.Assert(conf.Validate(), gc.IsNil)

	guard := NewGuard()
	sink := NewResultSink[int](&collectingSink{})
	collaborators, _, _ := fakeCollaborators(1, &fakeOutput{})

	w, err := NewWorkerFromTracer[int]("worker-test", conf, WorkerId{JobID: 60, Index: 0, TotalPeers: 1}, guard, sink, collaborators)
	c.Assert(err, gc.IsNil)
	c.Assert(w.span, gc.Not(gc.IsNil))

	w.span.Finish()
	c.Assert(tracer.Pool.Close(), gc.IsNil)
}

func errorsAs(err error, target **BuildJobError) bool {
	if bje, ok := err.(*BuildJobError); ok {
		*target = bje
		return true
	}
	return false
}
