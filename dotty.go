package btree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[K comparable] struct {
	idTable map[K]int
	max     int
}

func newtable[K comparable]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[K]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n K) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n K) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (t *Tree[K]) ToDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[*node[K]]()
	nodelist, edgelist := "", ""
	if !t.IsEmpty() {
		t.each(func(n *node[K], depth int) bool {
			ID := ids.alloc(n)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, dotLabel(n), nodeDotStyles(n.leaf))
			if !n.leaf {
				for _, child := range n.children[:n.n+1] {
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				}
			}
			return true
		})
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotLabel[K cmp.Ordered](n *node[K]) string {
	labels := make([]string, n.n)
	for i, k := range n.keys[:n.n] {
		labels[i] = strings.ReplaceAll(fmt.Sprint(k), "\"", "\\\"")
	}
	return strings.Join(labels, " | ")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled,shape=box"
	if !isleaf {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
