package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/btree"
	"golang.org/x/net/html"
)

func TestRenderScenarioTree(t *testing.T) {
	tree := btree.MustNew[int](btree.Config{Order: 3})
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(k)
	}
	var b strings.Builder
	if err := Render(&b, tree); err != nil {
		t.Fatal(err)
	}
	expected := `<ul class="btree"><li class="inner"><span class="keys">10</span><ul>` +
		`<li class="leaf"><span class="keys">5 6 7</span></li>` +
		`<li class="leaf"><span class="keys">12 17 20 30</span></li>` +
		`</ul></li></ul>`
	if b.String() != expected {
		t.Errorf("unexpected HTML:\n%s\nexpected:\n%s", b.String(), expected)
	}
}

func TestRenderNestsDeepTrees(t *testing.T) {
	tree := btree.MustNew[int](btree.Config{Order: 2})
	for k := 0; k < 40; k++ {
		tree.Insert(k)
	}
	n, err := TreeNode(tree)
	if err != nil {
		t.Fatal(err)
	}
	leaves, inner := 0, 0
	var walk func(n *html.Node, depth int)
	maxDepth := 0
	walk = func(n *html.Node, depth int) {
		if n.Type == html.ElementNode && n.Data == "li" {
			if depth > maxDepth {
				maxDepth = depth
			}
			switch n.Attr[0].Val {
			case ClassLeaf:
				leaves++
			case ClassInner:
				inner++
			}
			depth++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth)
		}
	}
	walk(n, 0)
	nodes := 0
	tree.Walk(func(int, bool, []int) bool {
		nodes++
		return true
	})
	if leaves+inner != nodes {
		t.Errorf("expected %d list items, have %d", nodes, leaves+inner)
	}
	if maxDepth+1 != tree.Height() {
		t.Errorf("expected list nesting depth %d, have %d", tree.Height(), maxDepth+1)
	}
}

func TestRenderEmptyTree(t *testing.T) {
	tree := btree.MustNew[int](btree.Config{Order: 2})
	var b strings.Builder
	if err := Render(&b, tree); err != nil {
		t.Fatal(err)
	}
	if b.String() != `<ul class="btree"></ul>` {
		t.Errorf("unexpected HTML for empty tree: %s", b.String())
	}
}
