package bench

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// traceTo redirects tracing into the test log. The returned teardown
// reinstalls a Go-log tracer restricted to errors.
func traceTo(t *testing.T, level tracing.TraceLevel) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(level)
	return func() {
		teardown()
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

func TestNewSuiteValidates(t *testing.T) {
	cases := []struct {
		counts, reps []int
	}{
		{nil, nil},
		{[]int{10, 20}, []int{1}},
		{[]int{10}, []int{0}},
		{[]int{-5}, []int{1}},
	}
	for i, c := range cases {
		if _, err := NewSuite(c.counts, c.reps, 1); !errors.Is(err, ErrInvalidSuite) {
			t.Errorf("case %d: expected ErrInvalidSuite, got %v", i, err)
		}
	}
}

func TestSuiteRunPublishesProgress(t *testing.T) {
	defer traceTo(t, tracing.LevelInfo)()
	//
	suite, err := NewSuite([]int{100, 200}, []int{2, 1}, 42)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sub, ok := suite.Subscribe(ctx)
	if !ok {
		t.Fatalf("subscription failed")
	}
	var got []Progress
	done := make(chan struct{})
	go func() {
		defer close(done)
		for m := range sub {
			got = append(got, m.(Progress))
		}
	}()
	res, err := suite.Run("M = 3", 3)
	if err != nil {
		t.Fatal(err)
	}
	suite.Close()
	<-done
	if len(res.Insert) != 2 || len(res.Delete) != 2 {
		t.Fatalf("expected one timing per count, have %v / %v", res.Insert, res.Delete)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 progress messages, have %d: %v", len(got), got)
	}
	last := got[len(got)-1]
	if last.Phase != PhaseDelete || last.Done != 2 || last.Total != 2 {
		t.Errorf("unexpected final progress %v", last)
	}
	if got[0].String() != "testing insert speed 1/2" {
		t.Errorf("unexpected progress text %q", got[0].String())
	}
}

func TestSuiteRunRejectsInvalidOrder(t *testing.T) {
	suite, err := NewSuite([]int{10}, []int{1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer suite.Close()
	if _, err := suite.Run("bad", 1); err == nil {
		t.Errorf("expected error for order 1")
	}
}

func TestDeleteSpeedRemovesAllKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	keys := []int{5, 3, 9, 1, 7, 3}
	if d := DeleteSpeed(2, keys, rng); d < 0 {
		t.Errorf("negative duration %v", d)
	}
	if len(keys) != 6 {
		t.Errorf("keys must not be dropped by shuffling")
	}
}

func TestWriteReport(t *testing.T) {
	var b strings.Builder
	err := WriteReport(&b, []int{10, 20}, []Result{{
		Name:   "M = 3",
		Insert: []float64{1.5, 2},
		Delete: []float64{3, 4.25},
	}})
	if err != nil {
		t.Fatal(err)
	}
	expected := "10 20 \n\nM = 3\n1.50 2.00 \n3.00 4.25 \n\n"
	if b.String() != expected {
		t.Errorf("unexpected report:\n%q\nexpected:\n%q", b.String(), expected)
	}
}
