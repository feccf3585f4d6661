package btree

import (
	"fmt"
	"io"
	"strings"
)

const (
	dumpIndent   = "|   "
	leafMarker   = "x"
	innerMarker  = ">"
	emptyMessage = "tree is empty"
)

// Dump writes a depth-first listing of the tree nodes to w, one node per
// line: a marker ("x" for leaves, ">" for internal nodes) followed by the
// node's keys. Children follow their parent, indented by one level.
//
//	> 10
//	|   x 5 6 7
//	|   x 12 17 20 30
//
// Dump is meant for debugging and verification.
func (t *Tree[K]) Dump(w io.Writer) error {
	if t.IsEmpty() {
		_, err := io.WriteString(w, emptyMessage+"\n")
		return err
	}
	var err error
	var b strings.Builder
	t.Walk(func(depth int, leaf bool, keys []K) bool {
		b.Reset()
		b.WriteString(strings.Repeat(dumpIndent, depth))
		if leaf {
			b.WriteString(leafMarker)
		} else {
			b.WriteString(innerMarker)
		}
		for _, k := range keys {
			fmt.Fprintf(&b, " %v", k)
		}
		b.WriteByte('\n')
		_, err = io.WriteString(w, b.String())
		return err == nil
	})
	return err
}
