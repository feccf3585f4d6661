/*
Command btdemo inserts random keys into a small B-tree and then repeatedly
removes a random half of them, printing the tree after every round.

For every round the sorted keys which should be present are printed next to
the keys the tree reports as present, followed by the tree itself. With flag
-words, keys are words instead of integers.
*/
package main

import (
	"cmp"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/btree"
	"github.com/npillmayer/btree/console"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	order   = flag.Int("order", 3, "order of the tree")
	samples = flag.Int("n", 50, "number of keys to insert")
	words   = flag.Bool("words", false, "use words generated by go-faker as keys")
	seed    = flag.Int64("seed", time.Now().UnixNano(), "seed for random keys")
	debug   = flag.Bool("debug", false, "trace tree restructuring")
)

func main() {
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	if *debug {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	rng := rand.New(rand.NewSource(*seed))
	var err error
	if *words {
		keys := make([]string, *samples)
		for i := range keys {
			keys[i] = strings.ToLower(faker.Word())
		}
		err = demo(keys, rng)
	} else {
		keys := make([]int, *samples)
		for i := range keys {
			keys[i] = rng.Intn(100)
		}
		err = demo(keys, rng)
	}
	if err != nil {
		gtrace.CoreTracer.Errorf("btdemo: %v", err)
		os.Exit(1)
	}
}

func demo[K cmp.Ordered](keys []K, rng *rand.Rand) error {
	tree, err := btree.New[K](btree.Config{Order: *order})
	if err != nil {
		return err
	}
	universe := slices.Clone(keys)
	slices.Sort(universe)
	universe = slices.Compact(universe)
	for _, k := range keys {
		tree.Insert(k)
	}
	keys = slices.Clone(universe)
	if err := show(tree, keys, universe); err != nil {
		return err
	}
	for len(keys) > *samples/4 {
		keys = deleteHalf(tree, keys, rng)
		if err := show(tree, keys, universe); err != nil {
			return err
		}
	}
	return nil
}

func show[K cmp.Ordered](tree *btree.Tree[K], keys []K, universe []K) error {
	unique := slices.Clone(keys)
	slices.Sort(unique)
	fmt.Println()
	fmt.Print("array: ")
	for _, k := range unique {
		fmt.Print(k, " ")
	}
	fmt.Println()
	fmt.Print("tree:  ")
	for _, k := range universe {
		if tree.Find(k) {
			fmt.Print(k, " ")
		}
	}
	fmt.Println()
	if err := console.Print(tree); err != nil {
		return err
	}
	if err := tree.Check(); err != nil {
		return err
	}
	return nil
}

// deleteHalf removes a random half of keys from the tree and returns the
// remaining ones. keys must be distinct.
func deleteHalf[K cmp.Ordered](tree *btree.Tree[K], keys []K, rng *rand.Rand) []K {
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	keep := len(keys) / 2
	for i := len(keys) - 1; i >= keep; i-- {
		tree.Remove(keys[i])
	}
	return keys[:keep]
}
