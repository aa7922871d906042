package graphproxy

import "context"

// VertexStatement is a reusable, per-source-vertex exploration step built
// by PrepareExploreVertex.
type VertexStatement func(ctx context.Context, srcID ID) (VertexIterator, error)

// EdgeStatement is a reusable, per-source-vertex exploration step built by
// PrepareExploreEdge.
type EdgeStatement func(ctx context.Context, srcID ID) (EdgeIterator, error)

// ReadGraph is the contract every dataflow operator uses to read the
// partitioned store: scans, index lookups, neighborhood expansions,
// counting, with push-down of row filters and column projection.
type ReadGraph interface {
	ScanVertex(ctx context.Context, params QueryParams) (VertexIterator, error)
	ScanEdge(ctx context.Context, params QueryParams) (EdgeIterator, error)
	IndexScanVertex(ctx context.Context, label LabelId, pk []PKV, params QueryParams) (*Vertex, error)
	GetVertex(ctx context.Context, ids []ID, params QueryParams) (VertexIterator, error)
	GetEdge(ctx context.Context, ids []ID, params QueryParams) (EdgeIterator, error)
	PrepareExploreVertex(direction Direction, params QueryParams) (VertexStatement, error)
	PrepareExploreEdge(direction Direction, params QueryParams) (EdgeStatement, error)
	CountVertex(ctx context.Context, params QueryParams) (uint64, error)
	CountEdge(ctx context.Context, params QueryParams) (uint64, error)
	GetPrimaryKey(ctx context.Context, id ID) (*PKV, error)
}

// adapter is the concrete ReadGraph grounded on the store/partition-manager/
// cluster-info external collaborators. It never returns partitions the
// local worker does not own.
type adapter struct {
	store             GlobalGraphQuery
	partitionManager  GraphPartitionManager
	serverPartitions  []PartitionId
	cluster           ClusterInfo
	rowFilterPushdown bool
	columnPushdown    bool
}

// NewReadGraph builds a ReadGraph over store, scoped to serverPartitions
// and this cluster member's share of them. Disabling rowFilterPushdown or
// columnPushdown forces the corresponding push-down decision to always
// degrade to in-process handling — useful for stores that don't support
// one or the other.
func NewReadGraph(
	store GlobalGraphQuery, partitionManager GraphPartitionManager, serverPartitions []PartitionId,
	cluster ClusterInfo, rowFilterPushdown, columnPushdown bool,
) ReadGraph {
	return &adapter{
		store:             store,
		partitionManager:  partitionManager,
		serverPartitions:  serverPartitions,
		cluster:           cluster,
		rowFilterPushdown: rowFilterPushdown,
		columnPushdown:    columnPushdown,
	}
}

func emptyVertexIterator() (Vertex, bool, error) { return Vertex{}, false, nil }
func emptyEdgeIterator() (Edge, bool, error)      { return Edge{}, false, nil }

// pushDownCondition decides whether filter converts cleanly to a store
// Condition. It never fails the query: a translation error degrades to
// "not pushed down".
func (a *adapter) pushDownCondition(filter RowFilter) (cond Condition, existsButNotPushedDown bool) {
	if filter == nil {
		return nil, false
	}
	if !a.rowFilterPushdown {
		return nil, true
	}
	if c, ok := filter.TryPushDown(); ok {
		return c, false
	}
	return nil, true
}

// requestedColumns decides the column set to request from the store:
// with push-down disabled, request everything; with it enabled, request
// nothing when no columns were requested, everything when the requested
// list is empty, and otherwise the requested properties. Filter-referenced
// properties are added (deduplicated) only when a row filter exists but was
// not pushed down, since only then is it evaluated in-process.
func (a *adapter) requestedColumns(params QueryParams, rowFilterExistsButNotPushedDown bool) []PropId {
	if !a.columnPushdown {
		return []PropId{}
	}
	if !params.ColumnsRequested {
		return nil
	}
	if len(params.Columns) == 0 {
		return []PropId{}
	}
	if !rowFilterExistsButNotPushedDown || params.Filter == nil {
		return params.Columns
	}
	return dedupeProps(append(append([]PropId{}, params.Columns...), params.Filter.NeededColumns()...))
}

func dedupeProps(props []PropId) []PropId {
	seen := make(map[PropId]struct{}, len(props))
	out := make([]PropId, 0, len(props))
	for _, p := range props {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func applyFilterSampleLimit(it VertexIterator, filter RowFilter, sampleRatio float64, limit uint32) VertexIterator {
	var yielded uint32
	return func() (Vertex, bool, error) {
		for {
			if limit > 0 && yielded >= limit {
				return Vertex{}, false, nil
			}
			v, ok, err := it()
			if !ok || err != nil {
				return Vertex{}, ok, err
			}
			if filter != nil {
				pass, err := filter.Apply(v.Properties())
				if err != nil {
					return Vertex{}, false, err
				}
				if !pass {
					continue
				}
			}
			if sampleRatio < 1.0 && !sampleAccept(sampleRatio) {
				continue
			}
			yielded++
			return v, true, nil
		}
	}
}

func applyEdgeFilterSampleLimit(it EdgeIterator, filter RowFilter, sampleRatio float64, limit uint32) EdgeIterator {
	var yielded uint32
	return func() (Edge, bool, error) {
		for {
			if limit > 0 && yielded >= limit {
				return Edge{}, false, nil
			}
			e, ok, err := it()
			if !ok || err != nil {
				return Edge{}, ok, err
			}
			if filter != nil {
				pass, err := filter.Apply(e.Properties())
				if err != nil {
					return Edge{}, false, err
				}
				if !pass {
					continue
				}
			}
			if sampleRatio < 1.0 && !sampleAccept(sampleRatio) {
				continue
			}
			yielded++
			return e, true, nil
		}
	}
}

// sampleAccept decides whether a row survives sampling. The default accepts
// every row; it is a package variable so that it can be replaced.
var sampleAccept = func(ratio float64) bool { return true }

func (a *adapter) ScanVertex(ctx context.Context, params QueryParams) (VertexIterator, error) {
	workerPartitions := Assign(a.serverPartitions, a.cluster)
	if len(workerPartitions) == 0 {
		return emptyVertexIterator, nil
	}

	cond, notPushedDown := a.pushDownCondition(params.Filter)
	props := a.requestedColumns(params, notPushedDown)
	si := ResolveSnapshotId(params)

	it, err := a.store.GetAllVertices(ctx, si, params.Labels, cond, props, 0, workerPartitions)
	if err != nil {
		return nil, NewQueryStoreError(err)
	}

	if notPushedDown {
		return applyFilterSampleLimit(it, params.Filter, orOne(params.SampleRatio), params.Limit), nil
	}
	return applyFilterSampleLimit(it, nil, orOne(params.SampleRatio), params.Limit), nil
}

func (a *adapter) ScanEdge(ctx context.Context, params QueryParams) (EdgeIterator, error) {
	workerPartitions := Assign(a.serverPartitions, a.cluster)
	if len(workerPartitions) == 0 {
		return emptyEdgeIterator, nil
	}

	cond, notPushedDown := a.pushDownCondition(params.Filter)
	props := a.requestedColumns(params, notPushedDown)
	si := ResolveSnapshotId(params)

	it, err := a.store.GetAllEdges(ctx, si, params.Labels, cond, props, 0, workerPartitions)
	if err != nil {
		return nil, NewQueryStoreError(err)
	}

	if notPushedDown {
		return applyEdgeFilterSampleLimit(it, params.Filter, orOne(params.SampleRatio), params.Limit), nil
	}
	return applyEdgeFilterSampleLimit(it, nil, orOne(params.SampleRatio), params.Limit), nil
}

// IndexScanVertex looks a vertex up by primary key. Every peer resolves
// the same global id and computes its owning partition; only the peer
// whose assigned partitions include it confirms the vertex, guaranteeing
// exactly one returning peer across the cluster.
func (a *adapter) IndexScanVertex(ctx context.Context, label LabelId, pk []PKV, params QueryParams) (*Vertex, error) {
	values := make([]PropertyValue, len(pk))
	for i, kv := range pk {
		values[i] = kv.Value
	}

	gid, found, err := a.partitionManager.GetVertexIdByPrimaryKeys(label, values)
	if err != nil {
		return nil, NewQueryStoreError(err)
	}
	if !found {
		return nil, nil
	}

	partition := a.partitionManager.GetPartitionId(gid)
	workerPartitions := Assign(a.serverPartitions, a.cluster)
	if !containsPartition(workerPartitions, partition) {
		return nil, nil
	}

	it, err := a.GetVertex(ctx, []ID{gid}, params)
	if err != nil {
		return nil, err
	}
	v, ok, err := it()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func containsPartition(partitions []PartitionId, p PartitionId) bool {
	for _, candidate := range partitions {
		if candidate == p {
			return true
		}
	}
	return false
}

// GetVertex fetches properties for the given ids, grouped by owning
// partition. Filters are always applied in-process (no push-down here).
func (a *adapter) GetVertex(ctx context.Context, ids []ID, params QueryParams) (VertexIterator, error) {
	si := ResolveSnapshotId(params)
	props := a.requestedColumns(params, params.Filter != nil)
	grouped := groupByPartition(ids, a.partitionManager)

	it, err := a.store.GetVertexProperties(ctx, si, grouped, props)
	if err != nil {
		return nil, NewQueryStoreError(err)
	}
	return applyFilterSampleLimit(it, params.Filter, 1.0, params.Limit), nil
}

// GetEdge is not supported by this store: there is no batched
// edge-properties-by-id primitive in GlobalGraphQuery.
func (a *adapter) GetEdge(ctx context.Context, ids []ID, params QueryParams) (EdgeIterator, error) {
	return nil, NewQueryStoreError(errUnsupportedGetEdge)
}

func groupByPartition(ids []ID, pm GraphPartitionManager) []PartitionVertexIds {
	byPartition := make(map[PartitionId][]ID)
	order := make([]PartitionId, 0)
	for _, id := range ids {
		p := pm.GetPartitionId(id)
		if _, ok := byPartition[p]; !ok {
			order = append(order, p)
		}
		byPartition[p] = append(byPartition[p], id)
	}
	grouped := make([]PartitionVertexIds, 0, len(order))
	for _, p := range order {
		grouped = append(grouped, PartitionVertexIds{Partition: p, IDs: byPartition[p]})
	}
	return grouped
}

func (a *adapter) PrepareExploreVertex(direction Direction, params QueryParams) (VertexStatement, error) {
	cond, notPushedDown := a.pushDownCondition(params.Filter)
	si := ResolveSnapshotId(params)

	return func(ctx context.Context, srcID ID) (VertexIterator, error) {
		src := []PartitionVertexIds{{Partition: a.partitionManager.GetPartitionId(srcID), IDs: []ID{srcID}}}

		var out, in VertexIterator
		var err error
		if direction == Out || direction == Both {
			out, err = a.store.GetOutVertexIds(ctx, si, src, params.Labels, cond, params.Limit)
			if err != nil {
				return nil, NewQueryStoreError(err)
			}
		}
		if direction == In || direction == Both {
			in, err = a.store.GetInVertexIds(ctx, si, src, params.Labels, cond, params.Limit)
			if err != nil {
				return nil, NewQueryStoreError(err)
			}
		}

		it := concatVertexIterators(out, in)
		if notPushedDown {
			return applyFilterSampleLimit(it, params.Filter, 1.0, 0), nil
		}
		return it, nil
	}, nil
}

func (a *adapter) PrepareExploreEdge(direction Direction, params QueryParams) (EdgeStatement, error) {
	cond, notPushedDown := a.pushDownCondition(params.Filter)
	props := a.requestedColumns(params, notPushedDown)
	si := ResolveSnapshotId(params)

	return func(ctx context.Context, srcID ID) (EdgeIterator, error) {
		src := []PartitionVertexIds{{Partition: a.partitionManager.GetPartitionId(srcID), IDs: []ID{srcID}}}

		var out, in EdgeIterator
		var err error
		// Out-then-in ordering is significant: callers may rely
		// on seeing out-edges before in-edges for a Both traversal.
		if direction == Out || direction == Both {
			out, err = a.store.GetOutEdges(ctx, si, src, params.Labels, cond, props, params.Limit)
			if err != nil {
				return nil, NewQueryStoreError(err)
			}
		}
		if direction == In || direction == Both {
			in, err = a.store.GetInEdges(ctx, si, src, params.Labels, cond, props, params.Limit)
			if err != nil {
				return nil, NewQueryStoreError(err)
			}
		}

		it := concatEdgeIterators(out, in)
		if notPushedDown {
			return applyEdgeFilterSampleLimit(it, params.Filter, 1.0, 0), nil
		}
		return it, nil
	}, nil
}

func concatVertexIterators(iters ...VertexIterator) VertexIterator {
	idx := 0
	return func() (Vertex, bool, error) {
		for idx < len(iters) {
			if iters[idx] == nil {
				idx++
				continue
			}
			v, ok, err := iters[idx]()
			if err != nil {
				return Vertex{}, false, err
			}
			if ok {
				return v, true, nil
			}
			idx++
		}
		return Vertex{}, false, nil
	}
}

func concatEdgeIterators(iters ...EdgeIterator) EdgeIterator {
	idx := 0
	return func() (Edge, bool, error) {
		for idx < len(iters) {
			if iters[idx] == nil {
				idx++
				continue
			}
			e, ok, err := iters[idx]()
			if err != nil {
				return Edge{}, false, err
			}
			if ok {
				return e, true, nil
			}
			idx++
		}
		return Edge{}, false, nil
	}
}

// CountVertex degenerates to scanning when a filter is present (it cannot
// be evaluated by the store's count primitive); otherwise it calls the
// store's count directly.
func (a *adapter) CountVertex(ctx context.Context, params QueryParams) (uint64, error) {
	if params.Filter != nil {
		it, err := a.ScanVertex(ctx, params)
		if err != nil {
			return 0, err
		}
		return countVertices(it)
	}

	workerPartitions := Assign(a.serverPartitions, a.cluster)
	if len(workerPartitions) == 0 {
		return 0, nil
	}
	si := ResolveSnapshotId(params)
	n, err := a.store.CountAllVertices(ctx, si, params.Labels, nil, workerPartitions)
	if err != nil {
		return 0, NewQueryStoreError(err)
	}
	return n, nil
}

func (a *adapter) CountEdge(ctx context.Context, params QueryParams) (uint64, error) {
	if params.Filter != nil {
		it, err := a.ScanEdge(ctx, params)
		if err != nil {
			return 0, err
		}
		return countEdges(it)
	}

	workerPartitions := Assign(a.serverPartitions, a.cluster)
	if len(workerPartitions) == 0 {
		return 0, nil
	}
	si := ResolveSnapshotId(params)
	n, err := a.store.CountAllEdges(ctx, si, params.Labels, nil, workerPartitions)
	if err != nil {
		return 0, NewQueryStoreError(err)
	}
	return n, nil
}

func countVertices(it VertexIterator) (uint64, error) {
	var n uint64
	for {
		_, ok, err := it()
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

func countEdges(it EdgeIterator) (uint64, error) {
	var n uint64
	for {
		_, ok, err := it()
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

func (a *adapter) GetPrimaryKey(ctx context.Context, id ID) (*PKV, error) {
	outerID, err := a.store.TranslateVertexId(ctx, id)
	if err != nil {
		return nil, NewQueryStoreError(err)
	}
	return &PKV{Key: GSStorePrimaryKey, Value: PropertyValue{Kind: PropLong, Raw: outerID}}, nil
}

func orOne(ratio float64) float64 {
	if ratio <= 0 {
		return 1.0
	}
	return ratio
}
