package peer

import "golang.org/x/xerrors"

// BuildJobError is raised while a Worker installs its dataflow plan:
// invariant violations (wrong channel index, wrong sender count) or plan
// errors forwarded from the caller-supplied builder closure.
type BuildJobError struct {
	msg string
	err error
}

// NewInternalError wraps an invariant violation detected during install.
func NewInternalError(msg string) *BuildJobError {
	return &BuildJobError{msg: msg}
}

// NewBuildJobError wraps a plan-builder error surfaced during install.
func NewBuildJobError(err error) *BuildJobError {
	return &BuildJobError{err: err}
}

func (e *BuildJobError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *BuildJobError) Unwrap() error { return e.err }

// JobExecError is raised while a Worker executes a step: dataflow/schedule
// errors, or store errors surfaced via the ReadGraph adapter.
type JobExecError struct {
	err error
}

// NewJobExecError wraps an error encountered while stepping the dataflow.
func NewJobExecError(err error) *JobExecError {
	return &JobExecError{err: err}
}

func (e *JobExecError) Error() string {
	return xerrors.Errorf("job execution error: %w", e.err).Error()
}

func (e *JobExecError) Unwrap() error { return e.err }
