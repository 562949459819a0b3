package prefetch

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/npillmayer/polyhedra/kernel"
	"github.com/npillmayer/polyhedra/kernel/exact"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func quadrant(t *testing.T) (kernel.Kernel, kernel.Handle) {
	t.Helper()
	k, err := exact.New(exact.Config{})
	if err != nil {
		t.Fatal(err.Error())
	}
	rays := kernel.NewMatrix(2)
	for _, row := range [][]int64{{1, 0}, {0, 1}} {
		qs := []*big.Rat{big.NewRat(row[0], 1), big.NewRat(row[1], 1)}
		if err := rays.AppendRow(qs); err != nil {
			t.Fatal(err.Error())
		}
	}
	h, err := k.NewCone(kernel.ScalarRational, rays, kernel.NewMatrix(2))
	if err != nil {
		t.Fatal(err.Error())
	}
	return k, h
}

func TestPrefetchWarmsCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k, h := quadrant(t)
	job := Start(k, h, kernel.Dim, kernel.Pointed, kernel.Rays, kernel.Facets)
	if err := job.Await(); err != nil {
		t.Fatal(err.Error())
	}
	// a second Await must not block
	if err := job.Await(); err != nil {
		t.Fatal(err.Error())
	}
	d, err := k.IntProperty(h, kernel.Dim)
	if err != nil {
		t.Fatal(err.Error())
	}
	if d != 2 {
		t.Errorf("DIM = %d, expected 2", d)
	}
}

func TestPrefetchCollectsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k, h := quadrant(t)
	job := Start(k, h, kernel.Dim, "BOGUS")
	err := job.Await()
	if !errors.Is(err, kernel.ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty from Await, got %v", err)
	}
}

func TestPrefetchSubscribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polyhedra")
	defer teardown()
	//
	k, h := quadrant(t)
	job := Start(k, h, kernel.Dim, kernel.Rays)
	ch, ok := job.Subscribe(context.Background())
	if !ok {
		// the job already finished; nothing left to observe
		if err := job.Await(); err != nil {
			t.Fatal(err.Error())
		}
		return
	}
	seen := 0
	for m := range ch {
		ev, isEvent := m.(Event)
		if !isEvent {
			t.Fatalf("unexpected message %v", m)
		}
		if ev.Err != nil {
			t.Errorf("event for %s carries error %v", ev.Property, ev.Err)
		}
		seen++
	}
	if seen > 2 {
		t.Errorf("received %d events for 2 properties", seen)
	}
	if err := job.Await(); err != nil {
		t.Fatal(err.Error())
	}
}
