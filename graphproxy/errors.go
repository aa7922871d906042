package graphproxy

import "golang.org/x/xerrors"

// GraphProxyError is surfaced by ReadGraph operations and wrapped as a
// peer.JobExecError by the caller once it crosses the core boundary.
type GraphProxyError struct {
	kind string
	err  error
}

// NewQueryStoreError wraps a failure returned by the underlying store call.
func NewQueryStoreError(err error) *GraphProxyError {
	return &GraphProxyError{kind: "query store error", err: err}
}

// NewFilterPushDownError wraps a failure while translating a row filter
// into a store Condition. This never fails a query outright — callers
// that construct one are choosing to log it while falling back to
// in-process filtering, not to abort.
func NewFilterPushDownError(err error) *GraphProxyError {
	return &GraphProxyError{kind: "filter push-down error", err: err}
}

func (e *GraphProxyError) Error() string {
	return xerrors.Errorf("%s: %w", e.kind, e.err).Error()
}

func (e *GraphProxyError) Unwrap() error { return e.err }

// errUnsupportedGetEdge is returned by GetEdge: the store has no batched
// edge-properties-by-id primitive.
var errUnsupportedGetEdge = xerrors.New("store does not support get_edge")
