// Package dataflow declares the contracts a Worker (package peer) consumes
// from its dataflow-graph builder, scheduler, and inter-peer event channel.
// None of these are implemented here beyond the minimal in-memory channel
// builder in channel.go — the dataflow algebra, the expression evaluator,
// and the wire protocol that ultimately backs these contracts in a
// production deployment are external collaborators.
package dataflow

import "golang.org/x/xerrors"

// Event is the opaque payload carried over the inter-peer event channel.
type Event interface{}

// Sender delivers events to one specific peer.
type Sender interface {
	Send(Event) error
	Close() error
}

// Receiver receives events addressed to the local peer.
type Receiver interface {
	Recv() (Event, bool)
}

// ChannelID identifies a job-wide channel. The event channel reserves
// Index 0 by convention.
type ChannelID struct {
	JobID uint64
	Index uint32
}

// ChannelResource is what a ChannelBuilder hands back: the channel's
// logical index plus one Sender per peer (including the calling peer's own
// self-sender, which the caller is expected to close and discard) and this
// peer's Receiver.
type ChannelResource struct {
	ID       ChannelID
	Senders  []Sender
	Receiver Receiver
}

// ChannelBuilder constructs the shared channel identified by id for a
// cohort of totalPeers peers. Called once per peer during Worker.Install.
type ChannelBuilder func(id ChannelID, workerIndex, totalPeers uint32) (*ChannelResource, error)

// EventEmitter delivers events to peers other than the local one. Built
// from the channel's senders once the self-sender has been removed.
type EventEmitter interface {
	Emit(peerIndex uint32, ev Event) error
	Close() error
}

// Dataflow is the built operator graph for one worker. Opaque beyond the
// two predicates the cooperative step loop needs.
type Dataflow interface {
	// CheckFinish reports whether every operator has drained.
	CheckFinish() bool
	// IsIdle reports whether there is no immediately runnable work.
	IsIdle() (bool, error)
}

// Schedule advances a Dataflow and delivers pending inter-peer events.
type Schedule interface {
	// Step advances the dataflow by one quantum.
	Step(df Dataflow) error
	// TryNotify delivers pending events without making progress.
	TryNotify() error
	// Close releases the schedule's resources.
	Close() error
}

// ScheduleFactory builds the Schedule a worker drives its dataflow with,
// from the event emitter and this peer's receiver.
type ScheduleFactory func(emitter EventEmitter, recv Receiver) (Schedule, error)

// Source is the root of the dataflow that a plan-builder closure extends
// with operators. Concrete dataflow implementations type-assert it as
// needed; the core treats it opaquely.
type Source interface{}

// DynPeers describes the set of peers an end-of-scope marker applies to.
type DynPeers struct {
	// All, when true, means the marker applies to every peer in the job.
	All        bool
	TotalPeers uint32
}

// AllPeers returns a DynPeers describing the full peer cohort.
func AllPeers(totalPeers uint32) DynPeers {
	return DynPeers{All: true, TotalPeers: totalPeers}
}

// EndOfScope is the marker emitted at the root tag once plan installation
// completes, informing downstream operators that no more root input will
// arrive.
type EndOfScope struct {
	Tag   string
	Peers DynPeers
}

// Port identifies an operator's output port.
type Port struct {
	OperatorID int
	PortIndex  int
}

// Output is the root output a Worker notifies and closes once the plan
// builder closure returns.
type Output interface {
	NotifyEnd(end EndOfScope) error
	Close() error
}

// OutputBuilder incrementally configures the root output before the plan
// builder closure wires operators onto it.
type OutputBuilder interface {
	// Source returns a Source fed by this builder's output, for the plan
	// builder closure to extend.
	Source() Source
	// Build finalizes the output.
	Build() (Output, error)
}

// OutputBuilderFactory constructs the root output builder with the given
// port and batch sizing.
type OutputBuilderFactory func(port Port, batchSize, batchCapacity uint32) OutputBuilder

// Builder incrementally wires operators starting from a Source and
// finalizes into a Dataflow once given a Schedule.
type Builder interface {
	Build(sched Schedule) (Dataflow, error)
}

// BuilderFactory constructs a fresh Builder for one peer's install call.
type BuilderFactory func(jobID uint64, workerIndex, totalPeers uint32, emitter EventEmitter) Builder

// ErrChannelIndexNotZero is returned by a ChannelBuilder (or detected by the
// caller) when the constructed event channel's logical index is not 0.
var ErrChannelIndexNotZero = xerrors.New("event channel index must be 0")

// Collaborators groups the four external factories a Worker needs to
// install a plan: the event channel, the operator-graph builder, the
// scheduler, and the root output. A front-end embedding this core supplies
// one set per job; tests typically pair NewLocalChannelHub with fakes for
// the other three.
type Collaborators struct {
	ChannelBuilder       ChannelBuilder
	BuilderFactory       BuilderFactory
	ScheduleFactory      ScheduleFactory
	OutputBuilderFactory OutputBuilderFactory
}
