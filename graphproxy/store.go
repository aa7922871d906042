// Package graphproxy adapts a partitioned property-graph store into the
// ReadGraph surface a dataflow's scan/expand/count operators consume. The
// store itself, the cluster membership oracle, and the predicate evaluator
// are external collaborators — this package only does worker→partition
// assignment, push-down decisions, and result shaping.
package graphproxy

import "context"

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/flowforge/pegasus-core/graphproxy GlobalGraphQuery,GraphPartitionManager,ClusterInfo

// ID is a runtime vertex or edge identifier.
type ID int64

// LabelId, PartitionId and PropId identify, respectively, a vertex/edge
// label, a store partition, and a property, all as the store assigns them.
type LabelId int32
type PartitionId uint32
type PropId int32

// SnapshotId selects a point-in-time view of the store.
type SnapshotId int64

// MaxSnapshotId is the largest representable snapshot id.
const MaxSnapshotId SnapshotId = 1<<63 - 1

// DefaultSnapshotId is substituted whenever a request does not pin a
// snapshot, meaning "the latest committed view".
const DefaultSnapshotId = MaxSnapshotId - 1

// GSStorePrimaryKey is the property id reserved for GraphScope's synthetic
// primary key, used when encoding GetPrimaryKey results.
const GSStorePrimaryKey PropId = 0

// Direction selects which endpoint(s) of an edge an explore operation
// follows.
type Direction int

const (
	Out Direction = iota
	In
	Both
)

// Condition is an opaque, store-specific predicate handed to the store
// when a row filter is pushed down successfully. Its shape is owned by the
// store implementation, not by this package.
type Condition interface{}

// RowFilter is the engine's predicate evaluator reference. TryPushDown
// attempts to translate the filter into a store Condition; ok is false
// when the filter cannot be expressed that way and must be applied
// in-process instead. Apply evaluates the filter against a fetched
// property set.
type RowFilter interface {
	TryPushDown() (cond Condition, ok bool)
	Apply(props PropertyBag) (bool, error)
	NeededColumns() []PropId
}

// PropertyBag is the lazily-fetched, cached property set backing a runtime
// Vertex or Edge.
type PropertyBag interface {
	Get(prop PropId) (PropertyValue, bool, error)
}

// QueryParams is the per-operator request every ReadGraph operation takes.
type QueryParams struct {
	// Labels restricts the scan to these label ids; empty means any label.
	Labels []LabelId
	// Columns lists the properties to fetch. It is consulted only when
	// ColumnsRequested is true; an empty (or nil) slice then means "all
	// properties".
	Columns []PropId
	// ColumnsRequested is false for "no properties needed", whatever
	// Columns holds.
	ColumnsRequested bool
	// Filter is the optional predicate; nil means no filtering.
	Filter RowFilter
	// Limit caps the results of one call; 0 means unlimited. Scans and
	// GetVertex apply it to the combined stream of this worker's
	// partitions; explore statements pass it to each store call instead.
	Limit uint32
	// SampleRatio is in (0,1]; 1.0 means no sampling.
	SampleRatio float64
	// Extra carries engine-specific knobs, e.g. the snapshot id under "SID".
	Extra map[string]string
}

// PKV is a primary-key value pair: (property id, encoded value).
type PKV struct {
	Key   PropId
	Value PropertyValue
}

// Vertex is the runtime representation returned by scans and lookups.
type Vertex struct {
	ID    ID
	Label LabelId
	props PropertyBag
}

// NewVertex builds a runtime vertex around its lazy property handle.
func NewVertex(id ID, label LabelId, props PropertyBag) Vertex {
	return Vertex{ID: id, Label: label, props: props}
}

// Properties returns the vertex's lazily-fetched property handle.
func (v Vertex) Properties() PropertyBag { return v.props }

// Edge is the runtime representation returned by scans and explorations.
type Edge struct {
	ID       ID
	Label    LabelId
	SrcID    ID
	DstID    ID
	SrcLabel LabelId
	DstLabel LabelId
	// FromSrc is true when the edge was fetched by following the
	// out-direction from SrcID, false when fetched via the in-direction —
	// it lets a consumer recover which endpoint drove the fetch.
	FromSrc bool
	props   PropertyBag
}

// NewEdge builds a runtime edge around its lazy property handle.
func NewEdge(id ID, label LabelId, srcID, dstID ID, srcLabel, dstLabel LabelId, fromSrc bool, props PropertyBag) Edge {
	return Edge{
		ID: id, Label: label, SrcID: srcID, DstID: dstID,
		SrcLabel: srcLabel, DstLabel: dstLabel, FromSrc: fromSrc, props: props,
	}
}

// Properties returns the edge's lazily-fetched property handle.
func (e Edge) Properties() PropertyBag { return e.props }

// VertexIterator yields vertices one at a time; ok is false once exhausted.
type VertexIterator func() (v Vertex, ok bool, err error)

// EdgeIterator yields edges one at a time; ok is false once exhausted.
type EdgeIterator func() (e Edge, ok bool, err error)

// PartitionVertexIds groups vertex ids that live in one partition, for
// batched property fetches.
type PartitionVertexIds struct {
	Partition PartitionId
	IDs       []ID
}

// GlobalGraphQuery is the store surface the adapter drives. A production
// implementation fans these calls out to the store's own partitioned
// shards; the core treats it as opaque.
type GlobalGraphQuery interface {
	GetAllVertices(ctx context.Context, snapshot SnapshotId, labels []LabelId, cond Condition,
		props []PropId, limit uint32, partitions []PartitionId) (VertexIterator, error)
	GetAllEdges(ctx context.Context, snapshot SnapshotId, labels []LabelId, cond Condition,
		props []PropId, limit uint32, partitions []PartitionId) (EdgeIterator, error)
	GetVertexProperties(ctx context.Context, snapshot SnapshotId, ids []PartitionVertexIds,
		props []PropId) (VertexIterator, error)
	GetOutVertexIds(ctx context.Context, snapshot SnapshotId, ids []PartitionVertexIds,
		edgeLabels []LabelId, cond Condition, limit uint32) (VertexIterator, error)
	GetInVertexIds(ctx context.Context, snapshot SnapshotId, ids []PartitionVertexIds,
		edgeLabels []LabelId, cond Condition, limit uint32) (VertexIterator, error)
	GetOutEdges(ctx context.Context, snapshot SnapshotId, ids []PartitionVertexIds,
		edgeLabels []LabelId, cond Condition, props []PropId, limit uint32) (EdgeIterator, error)
	GetInEdges(ctx context.Context, snapshot SnapshotId, ids []PartitionVertexIds,
		edgeLabels []LabelId, cond Condition, props []PropId, limit uint32) (EdgeIterator, error)
	CountAllVertices(ctx context.Context, snapshot SnapshotId, labels []LabelId, cond Condition,
		partitions []PartitionId) (uint64, error)
	CountAllEdges(ctx context.Context, snapshot SnapshotId, labels []LabelId, cond Condition,
		partitions []PartitionId) (uint64, error)
	TranslateVertexId(ctx context.Context, id ID) (outerID int64, err error)
}

// GraphPartitionManager maps vertex ids to partitions and resolves primary
// keys to global ids, on behalf of any worker regardless of ownership.
type GraphPartitionManager interface {
	GetPartitionId(vid ID) PartitionId
	GetVertexIdByPrimaryKeys(label LabelId, values []PropertyValue) (ID, bool, error)
}

// ClusterInfo is the cluster membership oracle a worker consults to learn
// its place in the cohort.
type ClusterInfo interface {
	LocalWorkerNum() uint32
	WorkerIndex() uint32
}
