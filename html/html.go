package html

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names set on the generated elements.
const (
	ClassTree  = "btree"
	ClassInner = "inner"
	ClassLeaf  = "leaf"
	ClassKeys  = "keys"
)

// TreeNode creates an HTML element for the node structure of a B-tree. Every
// tree node becomes a list item carrying a span with its keys; children of an
// internal node are collected in a nested unordered list.
//
//	<ul class="btree">
//	  <li class="inner"><span class="keys">10</span>
//	    <ul>
//	      <li class="leaf"><span class="keys">5 6 7</span></li>
//	      …
//
// For an empty tree, the resulting list has no items.
func TreeNode[K cmp.Ordered](tree *btree.Tree[K]) (*html.Node, error) {
	if tree == nil {
		return nil, errors.New("illegal argument: nil tree")
	}
	root := element(atom.Ul, ClassTree)
	lists := []*html.Node{root} // lists[d] receives nodes of depth d
	tree.Walk(func(depth int, leaf bool, keys []K) bool {
		lists = lists[:depth+1]
		class := ClassInner
		if leaf {
			class = ClassLeaf
		}
		li := element(atom.Li, class)
		span := element(atom.Span, ClassKeys)
		span.AppendChild(&html.Node{Type: html.TextNode, Data: joinKeys(keys)})
		li.AppendChild(span)
		lists[depth].AppendChild(li)
		if !leaf {
			ul := element(atom.Ul, "")
			li.AppendChild(ul)
			lists = append(lists, ul)
		}
		return true
	})
	return root, nil
}

// Render writes an HTML fragment for the node structure of tree to w.
// See TreeNode for the layout.
func Render[K cmp.Ordered](w io.Writer, tree *btree.Tree[K]) error {
	n, err := TreeNode(tree)
	if err != nil {
		return err
	}
	return html.Render(w, n)
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func joinKeys[K cmp.Ordered](keys []K) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = fmt.Sprint(k)
	}
	return strings.Join(labels, " ")
}
