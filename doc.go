/*
Package btree implements an in-memory B-tree holding a set of ordered keys.

B-Trees

A B-tree of order M keeps between M−1 and 2M−1 keys in every node except the
root, and an internal node with k keys has exactly k+1 children. All leaves
live at the same depth, so a tree with n keys never grows higher than
log_M(n+1). Lookups descend one node per level and scan at most 2M−1 keys per
node.

Insertion splits full nodes on the way down: whenever the descent is about to
enter a child which is already at capacity, the child is split in two and its
median key moves up into the parent. A full root is wrapped into a fresh
internal root first, which is the only way the tree grows in height.

Removal repairs underflow on the way back up. After a key has been removed from
a child subtree, a child which fell below M−1 keys either borrows a key through
the parent from a sibling with surplus (a rotation), or is merged with a
sibling and the separating parent key. Keys residing in internal nodes are
replaced by their in-order predecessor, i.e. the maximum key of the left
subtree. A root which has lost its last key is replaced by its only child,
which is the only way the tree shrinks in height.

Trees are not safe for concurrent use. Every operation runs to completion and
does not block.

	tree := btree.MustNew[int](btree.Config{Order: 3})
	tree.Insert(10)
	tree.Insert(20)
	tree.Remove(10)
	fmt.Println(tree.Find(20)) // true

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package btree

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var defaultTracer sync.Once

// T traces to the global core-tracer. If no core-tracer has been configured,
// a Go-log tracer restricted to errors is installed.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		defaultTracer.Do(func() {
			if gtrace.CoreTracer == nil {
				gtrace.CoreTracer = gologadapter.New()
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
			}
		})
	}
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
