/*
Package bench measures insertion and deletion speed of B-trees.

A Suite times runs for a list of key counts, each repeated a number of times,
and reports average nanoseconds per operation. Random keys are drawn from a
seeded source, so runs are reproducible. Progress is broadcast to subscribers
while a suite is running.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/btree"
)

// ErrInvalidSuite signals inconsistent suite parameters.
var ErrInvalidSuite = errors.New("bench: invalid suite")

// DefaultCounts are the key counts timed by default.
var DefaultCounts = []int{25000, 50000, 100000, 150000, 200000, 250000, 300000, 350000, 400000, 450000, 500000}

// DefaultReps are the repetitions per entry of DefaultCounts.
var DefaultReps = []int{20, 15, 15, 10, 5, 5, 5, 5, 4, 4, 4}

// Phases of a suite run, as reported by Progress.Phase.
const (
	PhaseInsert = "insert"
	PhaseDelete = "delete"
)

// Progress is published after every completed count of a phase.
type Progress struct {
	Name  string // name of the run
	Phase string // PhaseInsert or PhaseDelete
	Done  int    // counts completed
	Total int    // counts overall
}

func (p Progress) String() string {
	return fmt.Sprintf("testing %s speed %d/%d", p.Phase, p.Done, p.Total)
}

// Result holds the timings of one suite run.
type Result struct {
	Name   string
	Order  int
	Insert []float64 // nanoseconds per insertion, one entry per count
	Delete []float64 // nanoseconds per deletion, one entry per count
}

// Suite is a set of timing runs.
type Suite struct {
	Counts []int
	Reps   []int
	rng    *rand.Rand
	cast   *caster.Caster // broadcaster for progress messages
}

// NewSuite creates a suite timing len(counts) key counts, count i being
// repeated reps[i] times.
func NewSuite(counts, reps []int, seed int64) (*Suite, error) {
	if len(counts) == 0 || len(counts) != len(reps) {
		return nil, fmt.Errorf("%w: %d counts, %d repetitions", ErrInvalidSuite, len(counts), len(reps))
	}
	for i := range counts {
		if counts[i] <= 0 || reps[i] <= 0 {
			return nil, fmt.Errorf("%w: count and repetitions must be positive at index %d", ErrInvalidSuite, i)
		}
	}
	return &Suite{
		Counts: counts,
		Reps:   reps,
		rng:    rand.New(rand.NewSource(seed)),
		cast:   caster.New(nil),
	}, nil
}

// Subscribe returns a channel receiving Progress messages. The channel is
// closed when ctx is done or the suite is closed.
func (s *Suite) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	return s.cast.Sub(ctx, 16)
}

// Close stops broadcasting progress and closes all subscriptions.
func (s *Suite) Close() {
	s.cast.Close()
}

// Run times insertion and deletion for trees of the given order.
func (s *Suite) Run(name string, order int) (Result, error) {
	if _, err := btree.New[int](btree.Config{Order: order}); err != nil {
		return Result{}, err
	}
	res := Result{Name: name, Order: order}
	res.Insert = s.phase(name, PhaseInsert, func(n int) time.Duration {
		return InsertSpeed(order, s.randomKeys(n))
	})
	res.Delete = s.phase(name, PhaseDelete, func(n int) time.Duration {
		keys := s.randomKeys(n)
		return DeleteSpeed(order, keys, s.rng)
	})
	return res, nil
}

func (s *Suite) phase(name, phase string, run func(n int) time.Duration) []float64 {
	out := make([]float64, 0, len(s.Counts))
	for i, n := range s.Counts {
		var total time.Duration
		for j := 0; j < s.Reps[i]; j++ {
			total += run(n)
		}
		out = append(out, float64(total.Nanoseconds())/float64(s.Reps[i])/float64(n))
		s.cast.Pub(Progress{Name: name, Phase: phase, Done: i + 1, Total: len(s.Counts)})
	}
	btree.T().Infof("bench: %s %s phase done", name, phase)
	return out
}

func (s *Suite) randomKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = s.rng.Int()
	}
	return keys
}

// InsertSpeed returns the time it takes to insert keys into an empty tree.
func InsertSpeed(order int, keys []int) time.Duration {
	tree := btree.MustNew[int](btree.Config{Order: order})
	start := time.Now()
	for _, k := range keys {
		tree.Insert(k)
	}
	return time.Since(start)
}

// DeleteSpeed fills a tree with keys, shuffles them and returns the time it
// takes to remove all of them again.
func DeleteSpeed(order int, keys []int, rng *rand.Rand) time.Duration {
	tree := btree.MustNew[int](btree.Config{Order: order})
	for _, k := range keys {
		tree.Insert(k)
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	start := time.Now()
	for _, k := range keys {
		tree.Remove(k)
	}
	return time.Since(start)
}

// WriteReport writes timing results to w: a line of key counts, then for
// every result its name, a line of insertion timings and a line of deletion
// timings, in nanoseconds per operation.
func WriteReport(w io.Writer, counts []int, results []Result) error {
	var b strings.Builder
	for _, n := range counts {
		fmt.Fprintf(&b, "%d ", n)
	}
	b.WriteString("\n\n")
	for _, r := range results {
		b.WriteString(r.Name)
		b.WriteByte('\n')
		writeTimings(&b, r.Insert)
		writeTimings(&b, r.Delete)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTimings(b *strings.Builder, timings []float64) {
	for _, x := range timings {
		fmt.Fprintf(b, "%.2f ", x)
	}
	b.WriteByte('\n')
}
