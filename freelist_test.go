package btree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

func TestClearReleasesEveryNode(t *testing.T) {
	defer traceTo(t, tracing.LevelDebug)()
	//
	tree := makeIntTree(t, 2)
	for k := 0; k < 1000; k++ {
		tree.Insert(k)
	}
	nodes := 0
	tree.Walk(func(int, bool, []int) bool {
		nodes++
		return true
	})
	if live := tree.Stats().Live(); live != nodes {
		t.Fatalf("expected %d live nodes, stats report %d", nodes, live)
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("expected empty tree after Clear, have %s", tree)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if live := tree.Stats().Live(); live != 0 {
		t.Errorf("expected no live nodes after Clear, have %d", live)
	}
	if tree.free.len() != 2*DefaultFreeListSize {
		t.Errorf("expected free list to be filled up, holds %d nodes", tree.free.len())
	}
}

func TestClearedTreeIsReusable(t *testing.T) {
	tree := makeIntTree(t, 3)
	for k := 0; k < 200; k++ {
		tree.Insert(k)
	}
	tree.Clear()
	pooled := tree.free.len()
	for k := 0; k < 200; k += 3 {
		tree.Insert(k)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.free.len() >= pooled {
		t.Errorf("expected pooled nodes to be reused, pool size %d -> %d", pooled, tree.free.len())
	}
	if !tree.Find(99) || tree.Find(100) {
		t.Errorf("unexpected membership after reuse")
	}
}

func TestFreeListRespectsCapacity(t *testing.T) {
	tree, err := New[int](Config{Order: 2, FreeListSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 100; k++ {
		tree.Insert(k)
	}
	tree.Clear()
	if n := len(tree.free.leaves); n != 1 {
		t.Errorf("expected one pooled leaf, have %d", n)
	}
	if n := len(tree.free.inner); n != 1 {
		t.Errorf("expected one pooled internal node, have %d", n)
	}
	if len(tree.free.leaves[0].children) != 0 {
		t.Errorf("pooled leaf must not carry a child buffer")
	}
}

func TestReleaseTwicePanics(t *testing.T) {
	tree := makeIntTree(t, 2)
	n := tree.newNode(true)
	tree.release(n)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected second release to panic")
		}
	}()
	tree.release(n)
}
