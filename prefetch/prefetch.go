package prefetch

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/polyhedra/kernel"
)

// Event is broadcast for every property a job has finished fetching,
// successfully or not.
type Event struct {
	Property kernel.Property
	Err      error
}

// Job is a running prefetch. Jobs are created by Start and run until every
// requested property has been fetched once.
type Job struct {
	cast *caster.Caster // broadcaster for completed properties
	done chan struct{}
	mu   sync.Mutex
	errs []error
}

// Start fetches the given properties of h in the background, in order. Each
// fetch warms the kernel's cache for the property; results are discarded.
// Fetch errors do not stop the job, they are broadcast with the property's
// event and collected for Await.
func Start(k kernel.Kernel, h kernel.Handle, props ...kernel.Property) *Job {
	job := &Job{
		cast: caster.New(nil), // we will broadcast an event per fetched property
		done: make(chan struct{}),
	}
	go func() {
		defer close(job.done)
		defer job.cast.Close()
		for _, p := range props {
			err := fetch(k, h, p)
			if err != nil {
				tracer().Errorf("prefetch of %s: %s", p, err.Error())
				job.mu.Lock()
				job.errs = append(job.errs, err)
				job.mu.Unlock()
			}
			job.cast.Pub(Event{Property: p, Err: err})
		}
	}()
	return job
}

// Subscribe registers a listener with a running job. The channel receives
// one Event per fetched property and is closed when the job finishes or ctx
// is done. ok is false if the job has already finished.
func (job *Job) Subscribe(ctx context.Context) (ch chan interface{}, ok bool) {
	return job.cast.Sub(ctx, 1)
}

// Unsubscribe removes a listener channel obtained from Subscribe.
func (job *Job) Unsubscribe(ch chan interface{}) {
	job.cast.Unsub(ch)
}

// Await blocks until the job has fetched every property, then reports the
// collected fetch errors, if any.
func (job *Job) Await() error {
	<-job.done
	job.mu.Lock()
	defer job.mu.Unlock()
	return errors.Join(job.errs...)
}

var intProps = map[kernel.Property]bool{
	kernel.Dim:          true,
	kernel.ConeAmbient:  true,
	kernel.AmbientDim:   true,
	kernel.NRays:        true,
	kernel.NFacets:      true,
	kernel.NVertices:    true,
	kernel.LinealityDim: true,
}

var boolProps = map[kernel.Property]bool{
	kernel.Pointed:   true,
	kernel.FullDim:   true,
	kernel.IsBounded: true,
}

// fetch asks the kernel for one property through the call matching the
// property's kind.
func fetch(k kernel.Kernel, h kernel.Handle, p kernel.Property) error {
	var err error
	switch {
	case intProps[p]:
		_, err = k.IntProperty(h, p)
	case boolProps[p]:
		_, err = k.BoolProperty(h, p)
	default:
		_, err = k.BlockProperty(h, p)
	}
	return err
}
