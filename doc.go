/*
Package bstree implements a plain, unbalanced binary search tree over
ordered keys.

Binary Search Trees

A tree is nothing more than a root *Node. There is no container type: clients
hold on to the root and thread it through the free functions of this package,
which either mutate the tree in place and hand the root back, or just look at
it.

	root := bstree.Leaf(15)
	root, _ = bstree.Add(root, 10)
	root, _ = bstree.Add(root, 20)
	bstree.Search(root, 10)   // true

An empty tree is a nil root. Add cannot start a tree from nil; create the
first node with Leaf or NewNode.

Every node exclusively owns its two children. There are no parent pointers,
so operations needing a node's parent (Remove) find it by descending again
from the root.

The tree does not balance itself. RotateLeft and RotateRight are offered as
building blocks for clients who want to restructure a subtree, but nothing in
this package calls them on its own.

Caveats

Remove reproduces a simplified deletion scheme. When the removed node has two
children, its left subtree is always hung into the parent's right slot, even
if the node was the parent's left child. See Remove for details.

Height does not distinguish between an empty subtree and a single leaf; both
have height 0.

The tree is not safe for concurrent mutation.

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
package bstree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
