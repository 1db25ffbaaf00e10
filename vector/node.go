package vector

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// vnode represents a node in the trie a vector is made of. A node is either
// internal, holding up to 'degree' children, or external (leaf==true), holding up
// to 'degree' items. The nil node denotes an empty subtree.
//
// Nodes may be shared between clones of a vector. owners counts the references
// to a node; only a node with exactly one owner may be modified in place.
// The count may over-estimate the true number of owners, e.g. when a clone
// has been garbage collected. This results in unnecessary copies, but never in
// modifying a node another vector is able to see.
type vnode[T any] struct {
	owners   atomic.Int32
	leaf     bool
	children []*vnode[T]
	leafs    []T
}

func newInternal[T any](k int) *vnode[T] {
	n := &vnode[T]{children: make([]*vnode[T], 0, k)}
	n.owners.Store(1)
	return n
}

func newExternal[T any](k int, value T) *vnode[T] {
	n := &vnode[T]{leaf: true, leafs: make([]T, 1, k)}
	n.leafs[0] = value
	n.owners.Store(1)
	return n
}

func emptyExternal[T any](k int) *vnode[T] {
	n := &vnode[T]{leaf: true, leafs: make([]T, 0, k)}
	n.owners.Store(1)
	return n
}

// share registers an additional owner of node. Nil nodes are ignored.
func (node *vnode[T]) share() *vnode[T] {
	if node != nil {
		node.owners.Add(1)
	}
	return node
}

// release gives up a reference to node.
func (node *vnode[T]) release() {
	if node != nil {
		node.owners.Add(-1)
	}
}

func (node *vnode[T]) unique() bool {
	return node.owners.Load() == 1
}

// clone creates a single-owner copy of node. Children of an internal node
// will be shared between node and its copy.
func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{leaf: node.leaf}
	n.owners.Store(1)
	if node.leaf {
		n.leafs = make([]T, len(node.leafs), cap(node.leafs))
		copy(n.leafs, node.leafs)
		return n
	}
	n.children = make([]*vnode[T], len(node.children), cap(node.children))
	copy(n.children, node.children)
	for _, ch := range n.children {
		ch.share()
	}
	return n
}

// makeMut makes sure that the node at *pp is exclusively owned, copying it if
// necessary, and returns it.
func makeMut[T any](pp **vnode[T]) *vnode[T] {
	node := *pp
	assertThat(node != nil, "attempt to modify an empty node")
	if node.unique() {
		return node
	}
	tracer().Debugf("copy-on-write for shared node %s", node)
	c := node.clone()
	node.release()
	*pp = c
	return c
}

// mutableInternal narrows the node at *pp to an internal node which may be modified.
// An empty node is about to become internal and will be replaced by a fresh one.
func mutableInternal[T any](pp **vnode[T], k int) *vnode[T] {
	if *pp == nil {
		*pp = newInternal[T](k)
		return *pp
	}
	assertThat(!(*pp).leaf, "expected internal node, have %s", *pp)
	return makeMut(pp)
}

// asExternal narrows node to an external node.
func (node *vnode[T]) asExternal() *vnode[T] {
	assertThat(node != nil, "expected external node, have empty node")
	assertThat(node.leaf, "expected external node, have %s", node)
	return node
}

func (node *vnode[T]) String() string {
	if node == nil {
		return "[]"
	}
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leaf {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}
