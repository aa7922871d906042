package peer

import (
	"fmt"
	"reflect"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	jaeger "github.com/uber/jaeger-client-go"

	"github.com/flowforge/pegasus-core/dataflow"
	"github.com/flowforge/pegasus-core/tracer"
)

// PlanFunc wires operators onto src and drains into sink. It is invoked
// exactly once, during Install, and any error it returns is surfaced to the
// caller as a BuildJobError.
type PlanFunc[T any] func(src dataflow.Source, sink ResultSink[T]) error

// Worker is a schedulable task that owns a dataflow instance, a local
// scheduler, per-job resources, and coordinates job-wide termination with
// its peers through a shared Guard. The surrounding cooperative scheduler
// drives it exclusively through Execute and CheckReady.
type Worker[T any] struct {
	conf  *JobConf
	id    WorkerId
	guard *Guard
	start time.Time
	sink  ResultSink[T]
	span  opentracing.Span

	collaborators dataflow.Collaborators

	task       workerTask
	typed      TypedResources
	keyed      KeyedResources
	isFinished bool
}

// NewWorker constructs a Worker for one peer of a job, incrementing the
// shared peer guard. If this is the first peer of the job to be
// constructed, the job is registered with the process-wide memory
// accountant and cancellation map.
func NewWorker[T any](
	conf *JobConf, id WorkerId, guard *Guard, sink ResultSink[T], span opentracing.Span,
	collaborators dataflow.Collaborators,
) (*Worker[T], error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	w := &Worker[T]{
		conf:          conf,
		id:            id,
		guard:         guard.Clone(),
		sink:          sink,
		span:          span,
		collaborators: collaborators,
		task:          emptyTask{},
		typed:         TypedResources{},
		keyed:         KeyedResources{},
	}

	if w.guard.Inc() == 0 {
		defaultAccountant.newTask(conf.JobID)
		defaultCancelMap.addEntry(conf.JobID)
	}
	w.start = conf.Clock.Now()
	return w, nil
}

// NewWorkerFromTracer builds a Worker the same way as NewWorker, except it
// obtains its own span instead of requiring the caller to have started one:
// it resolves a Jaeger tracer for serviceName through tracer.GetTracer and
// starts a "worker.execute" span on it. Use this when no surrounding
// request already carries a span to attach to; otherwise start one and
// call NewWorker directly so the worker's span nests under it.
func NewWorkerFromTracer[T any](
	serviceName string, conf *JobConf, id WorkerId, guard *Guard, sink ResultSink[T],
	collaborators dataflow.Collaborators,
) (*Worker[T], error) {
	t, err := tracer.GetTracer(serviceName)
	if err != nil {
		return nil, err
	}
	span := t.StartSpan("worker.execute")
	span.SetTag("job_id", id.JobID)
	span.SetTag("worker_index", id.Index)
	return NewWorker(conf, id, guard, sink, span, collaborators)
}

// AddResource installs a typed, keyless resource that operators may reach
// through the ambient slot populated by ResourceScope during Execute.
func (w *Worker[T]) AddResource(resource interface{}) {
	w.typed[reflect.TypeOf(resource)] = resource
}

// AddResourceWithKey installs a keyed resource under key.
func (w *Worker[T]) AddResourceWithKey(key string, resource interface{}) {
	w.keyed[key] = resource
}

// Install binds the dataflow plan produced by planFn. It must be called at
// most once, before the surrounding scheduler starts driving Execute.
func (w *Worker[T]) Install(planFn PlanFunc[T]) error {
	restore := bindWorkerID(w.id)
	defer restore()

	resource, err := w.collaborators.ChannelBuilder(dataflow.ChannelID{JobID: w.id.JobID, Index: 0}, w.id.Index, w.id.TotalPeers)
	if err != nil {
		return NewBuildJobError(err)
	}
	if resource.ID.Index != 0 {
		return NewInternalError("event channel index must be 0")
	}

	senders := resource.Senders
	if w.conf.TotalWorkers > 1 {
		if uint32(len(senders)) != w.id.TotalPeers+1 {
			return NewInternalError(fmt.Sprintf(
				"event channel has %d senders, want %d (total_peers+1)", len(senders), w.id.TotalPeers+1))
		}
		// Swap-remove rather than shift: the sender at the last position
		// (the reserved total_peers+1'th slot) takes the self-sender's
		// place, so every other peer keeps its original index as the key
		// into the remaining slice (grounded on worker.rs's
		// tx.swap_remove(index)).
		self := senders[w.id.Index]
		last := len(senders) - 1
		senders = append([]dataflow.Sender{}, senders...)
		senders[w.id.Index] = senders[last]
		senders = senders[:last]
		_ = self.Close()
	}

	emitter := dataflow.NewEventEmitter(senders)
	builder := w.collaborators.BuilderFactory(w.id.JobID, w.id.Index, w.id.TotalPeers, emitter)

	outputBuilder := w.collaborators.OutputBuilderFactory(
		dataflow.Port{OperatorID: 0, PortIndex: 0}, w.conf.BatchSize, w.conf.BatchCapacity)
	source := outputBuilder.Source()

	if err := planFn(source, w.sink.Clone()); err != nil {
		if bje, ok := err.(*BuildJobError); ok {
			return bje
		}
		return NewBuildJobError(err)
	}

	sched, err := w.collaborators.ScheduleFactory(emitter, resource.Receiver)
	if err != nil {
		return NewBuildJobError(err)
	}
	df, err := builder.Build(sched)
	if err != nil {
		return NewBuildJobError(err)
	}
	w.task = &dataflowTask{df: df, sch: sched}

	output, err := outputBuilder.Build()
	if err != nil {
		return NewBuildJobError(err)
	}
	_ = output.NotifyEnd(dataflow.EndOfScope{Tag: "Root", Peers: dataflow.AllPeers(w.id.TotalPeers)})
	_ = output.Close()

	return nil
}

func (w *Worker[T]) checkCancel() bool {
	if w.conf.TimeLimitMs > 0 {
		elapsed := uint64(w.conf.Clock.Now().Sub(w.start).Milliseconds())
		if elapsed >= w.conf.TimeLimitMs {
			return true
		}
	}
	return w.sink.CancelHook()
}

// Execute advances the worker by one cooperative step. It is called
// repeatedly by the surrounding scheduler until it returns Finished.
func (w *Worker[T]) Execute() TaskState {
	restore := bindWorkerID(w.id)
	defer restore()

	if w.checkCancel() {
		ext.Error.Set(w.span, true)
		w.span.LogKV("event", "error", "message", "Job is canceled")
		w.span.Finish()
		w.sink.SetCancelHook(true)
		return Finished
	}

	scope := EnterResourceScope(&w.typed, &w.keyed)
	defer scope.Exit()

	state, err := w.task.execute()
	if err != nil {
		w.conf.Logger.WithFields(w.logFields()).WithError(err).Error("execute error")
		ext.Error.Set(w.span, true)
		w.span.LogKV("event", "error", "message", err.Error())
		w.span.Finish()
		w.sink.OnError(err)
		return Finished
	}

	if state != Finished {
		return state
	}

	elapsed := w.conf.Clock.Now().Sub(w.start)
	w.span.SetTag("used_ms", elapsed.Milliseconds())
	w.span.Finish()
	w.conf.Logger.WithFields(w.logFields()).WithField("used_ms", elapsed.Milliseconds()).Info("finished")
	w.isFinished = true

	if w.guard.Dec() == 1 {
		return Finished
	}
	return NotReady
}

// CheckReady reports the worker's readiness without making progress beyond
// delivering pending events.
func (w *Worker[T]) CheckReady() TaskState {
	restore := bindWorkerID(w.id)
	defer restore()

	if w.isFinished && w.guard.Load() == 0 {
		return Finished
	}
	if w.checkCancel() {
		w.sink.SetCancelHook(true)
		return Finished
	}
	if !w.isFinished {
		state, err := w.task.checkReady()
		if err != nil {
			w.conf.Logger.WithFields(w.logFields()).WithError(err).Error("execute error")
			w.sink.OnError(err)
			return Finished
		}
		return state
	}
	if w.guard.Load() == 0 {
		return Finished
	}
	return NotReady
}

// Close releases process-wide accounting for this worker. It must be
// called exactly once the worker is no longer in use, analogous to Rust's
// Drop: it only de-registers the job when this worker observes the guard
// at zero, and never panics on a poisoned cancellation map.
func (w *Worker[T]) Close() {
	if w.guard.Load() == 0 {
		defaultAccountant.removeTask(w.conf.JobID)
	}
	defaultCancelMap.removeEntry(w.conf.JobID, w.conf.Logger)
}

// logFields returns the structured fields every log line for this worker
// carries: its job/peer identity plus the trace id of its span, when the
// tracer is Jaeger-backed.
func (w *Worker[T]) logFields() map[string]interface{} {
	fields := map[string]interface{}{"job_id": w.id.JobID, "peer_index": w.id.Index}
	if trace := traceIDHex(w.span); trace != "" {
		fields["trace_id"] = trace
	}
	return fields
}

// ID returns this worker's identity.
func (w *Worker[T]) ID() WorkerId { return w.id }

func traceIDHex(span opentracing.Span) string {
	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		return sc.TraceID().String()
	}
	return ""
}
