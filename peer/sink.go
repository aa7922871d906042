package peer

import (
	"sync"
	"sync/atomic"
)

// Sink is implemented by types that deliver result records to whatever
// collected the Worker's output (a data-plane push, a test collector, ...).
// Push and OnError are invoked by operator code running inside the worker's
// cooperative step; OnError must be idempotent.
type Sink[T any] interface {
	Push(item T)
	OnError(err error)
}

// ResultSink is a cloneable handle around a shared Sink plus a process-
// visible cancel flag. Multiple peers (and the surrounding scheduler) may
// hold clones; the first call to OnError wins, later ones are dropped.
type ResultSink[T any] struct {
	state *sinkState[T]
}

type sinkState[T any] struct {
	delegate Sink[T]

	mu     sync.Mutex
	errSet bool
	cancel int32
}

// NewResultSink wraps delegate in a cloneable, cancel-aware sink handle.
func NewResultSink[T any](delegate Sink[T]) ResultSink[T] {
	return ResultSink[T]{state: &sinkState[T]{delegate: delegate}}
}

// Clone returns a handle sharing the same underlying state.
func (s ResultSink[T]) Clone() ResultSink[T] {
	return ResultSink[T]{state: s.state}
}

// Push delivers a result record downstream.
func (s ResultSink[T]) Push(item T) {
	s.state.delegate.Push(item)
}

// OnError delivers a fatal error. Only the first call per sink takes
// effect; subsequent calls are silently dropped.
func (s ResultSink[T]) OnError(err error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if s.state.errSet {
		return
	}
	s.state.errSet = true
	s.state.delegate.OnError(err)
}

// SetCancelHook sets the shared cancellation flag. Any party may call this;
// every clone observes the new value immediately.
func (s ResultSink[T]) SetCancelHook(cancel bool) {
	var v int32
	if cancel {
		v = 1
	}
	atomic.StoreInt32(&s.state.cancel, v)
}

// CancelHook reports whether cancellation has been requested.
func (s ResultSink[T]) CancelHook() bool {
	return atomic.LoadInt32(&s.state.cancel) != 0
}
