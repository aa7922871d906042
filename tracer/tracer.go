// Package tracer hands out Jaeger-backed opentracing.Tracer instances for
// the spans a Worker attaches to each job. It does not
// start spans itself — either the embedder starts one span per worker and
// passes it to peer.NewWorker, or peer.NewWorkerFromTracer starts one on a
// tracer obtained from GetTracer.
package tracer

import (
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// Pool tracks every tracer handed out by GetTracer so an embedder can flush
// and close them all on shutdown without threading closers through its own
// call graph.
var Pool = new(pool)

type pool struct {
	mu            sync.Mutex
	tracerClosers []io.Closer
}

// Close shuts down every tracer currently tracked by the pool, aggregating
// any errors encountered.
func (p *pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	for _, closer := range p.tracerClosers {
		if cErr := closer.Close(); cErr != nil {
			err = multierror.Append(err, cErr)
		}
	}

	p.tracerClosers = nil
	return err
}

// MustGetTracer obtains a Jaeger tracer for serviceName or panics.
func MustGetTracer(serviceName string) opentracing.Tracer {
	tracer, err := GetTracer(serviceName)
	if err != nil {
		panic(err)
	}
	return tracer
}

// GetTracer obtains a Jaeger tracer for serviceName, configured from the
// environment, and registers its closer with Pool. Callers must invoke
// Pool.Close before the process exits so buffered spans are flushed.
//
// Every span is sampled; a worker's used_ms and error tags are only useful
// if they are never dropped by sampling.
func GetTracer(serviceName string) (opentracing.Tracer, error) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, err
	}

	cfg.Sampler = &jaegercfg.SamplerConfig{
		Type:  jaeger.SamplerTypeConst,
		Param: 1,
	}
	cfg.ServiceName = serviceName

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, err
	}

	Pool.mu.Lock()
	Pool.tracerClosers = append(Pool.tracerClosers, closer)
	Pool.mu.Unlock()
	return tracer, nil
}
