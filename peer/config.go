package peer

import (
	"io/ioutil"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// JobConf encapsulates the immutable, job-wide configuration shared by every
// peer cooperating on a job. A JobConf must not be mutated once a Worker has
// been constructed from it.
type JobConf struct {
	// JobID is unique per process lifetime.
	JobID uint64

	// JobName is a human-readable label used in log output.
	JobName string

	// TotalWorkers is the number of peers cooperating on this job.
	TotalWorkers uint32

	// BatchSize bounds the root output's per-batch element count.
	BatchSize uint32

	// BatchCapacity bounds the number of in-flight batches for the root
	// output.
	BatchCapacity uint32

	// TimeLimitMs is the wall-clock cap measured from worker construction.
	// Zero means unbounded.
	TimeLimitMs uint64

	// Clock supplies the notion of "now" used to evaluate TimeLimitMs. If
	// unset, the wall clock is used.
	Clock clock.Clock

	// Logger receives structured log output for worker lifecycle events. If
	// unset, a discarding logger is used.
	Logger *logrus.Entry
}

// Validate checks the configuration and fills in defaults for optional
// fields left unset by the caller. It aggregates every violation it finds
// instead of failing on the first one.
func (cfg *JobConf) Validate() error {
	var err error
	if cfg.TotalWorkers == 0 {
		err = multierror.Append(err, xerrors.Errorf("total workers must be at least 1"))
	}
	if cfg.BatchSize == 0 {
		err = multierror.Append(err, xerrors.Errorf("batch size must be at least 1"))
	}
	if cfg.BatchCapacity == 0 {
		err = multierror.Append(err, xerrors.Errorf("batch capacity must be at least 1"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}
