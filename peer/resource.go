package peer

import (
	"reflect"
	"sync"
)

// TypedResources maps a type identity to one owning value of that type.
// Operators reach it through the ambient slot populated by ResourceScope,
// never directly.
type TypedResources map[reflect.Type]interface{}

// KeyedResources maps a string key to one owning value. Same access rule as
// TypedResources.
type KeyedResources map[string]interface{}

// ambient process-wide slots. Exactly one worker may occupy them on a given
// OS thread at a time; ResourceScope is the only legitimate way to populate
// them, and it asserts the slot was empty on entry.
var (
	ambientMu       sync.Mutex
	ambientTyped    TypedResources
	ambientKeyed    KeyedResources
	ambientWorker   WorkerId
	ambientWorkerOK bool
)

// CurrentResources returns the typed resource table installed by the
// innermost active ResourceScope on this goroutine's logical thread, or nil
// if none is active.
func CurrentResources() TypedResources {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	return ambientTyped
}

// CurrentKeyedResources returns the keyed resource table installed by the
// innermost active ResourceScope, or nil if none is active.
func CurrentKeyedResources() KeyedResources {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	return ambientKeyed
}

// ResourceScope scopes the worker's two resource tables into the ambient
// slots for the duration of a single execute() invocation, restoring them
// on every exit path (normal return, error, or panic).
type ResourceScope struct {
	typed *TypedResources
	keyed *KeyedResources

	hadTyped bool
	hadKeyed bool
}

// EnterResourceScope swaps any non-empty table into its ambient slot,
// asserting the slot was previously empty. Callers must defer scope.Exit().
func EnterResourceScope(typed *TypedResources, keyed *KeyedResources) *ResourceScope {
	ambientMu.Lock()
	defer ambientMu.Unlock()

	scope := &ResourceScope{typed: typed, keyed: keyed}
	if len(*typed) > 0 {
		if len(ambientTyped) != 0 {
			panic("peer: ambient typed resource slot was not empty on scope entry")
		}
		ambientTyped, *typed = *typed, TypedResources{}
		scope.hadTyped = true
	}
	if len(*keyed) > 0 {
		if len(ambientKeyed) != 0 {
			panic("peer: ambient keyed resource slot was not empty on scope entry")
		}
		ambientKeyed, *keyed = *keyed, KeyedResources{}
		scope.hadKeyed = true
	}
	return scope
}

// Exit restores the ambient slots back into the worker's tables. Safe to
// call via defer from any exit path.
func (s *ResourceScope) Exit() {
	ambientMu.Lock()
	defer ambientMu.Unlock()

	if s.hadTyped {
		*s.typed, ambientTyped = ambientTyped, nil
	}
	if s.hadKeyed {
		*s.keyed, ambientKeyed = ambientKeyed, nil
	}
}

// bindWorkerID publishes id into the ambient worker-identity slot for the
// duration of a call, returning a function that restores the previous
// value.
func bindWorkerID(id WorkerId) func() {
	ambientMu.Lock()
	prevID, prevOK := ambientWorker, ambientWorkerOK
	ambientWorker, ambientWorkerOK = id, true
	ambientMu.Unlock()

	return func() {
		ambientMu.Lock()
		ambientWorker, ambientWorkerOK = prevID, prevOK
		ambientMu.Unlock()
	}
}

// CurrentWorkerID returns the worker identity bound by the innermost active
// Install/Execute/CheckReady call, and whether one is active at all.
func CurrentWorkerID() (WorkerId, bool) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	return ambientWorker, ambientWorkerOK
}
