package vector

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// ErrIndexOutOfRange is the cause of panics when accessing an index outside [0…Len).
// Clients recovering from such a panic may check for it with errors.Is.
var ErrIndexOutOfRange = errors.New("vector index out of range")

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.length {
		panic(xerrors.Errorf("cow.vector: index %d with length %d: %w", i, v.length, ErrIndexOutOfRange))
	}
}

// trieCapacity is the number of items a trie of a given depth is able to hold.
func (v *Vector[T]) trieCapacity(depth int) int {
	return 1 << (v.bits * uint(depth+1))
}

// newPath creates a chain of fresh internal nodes, starting at a level with
// the given shift, down to leaf.
func (v *Vector[T]) newPath(shift uint, leaf *vnode[T]) *vnode[T] {
	var top *vnode[T]
	node := mutableInternal(&top, v.degree)
	if shift == v.bits {
		node.children = append(node.children, leaf)
	} else {
		node.children = append(node.children, v.newPath(shift-v.bits, leaf))
	}
	return top
}

// pushLeaf attaches leaf to the rightmost spine of the subtree at *pp. idx is the
// index of the first item of leaf. Every internal node on the way gets
// copied if it is shared.
func (v *Vector[T]) pushLeaf(pp **vnode[T], shift uint, idx int, leaf *vnode[T]) {
	node := mutableInternal(pp, v.degree)
	subidx := (idx >> shift) & v.mask
	assertThat(subidx <= len(node.children), "inconsistency: hole in trie at slot %d of %s", subidx, node)
	if shift == v.bits {
		node.children = append(node.children, leaf)
		return
	}
	if subidx < len(node.children) {
		v.pushLeaf(&node.children[subidx], shift-v.bits, idx, leaf)
		return
	}
	node.children = append(node.children, v.newPath(shift-v.bits, leaf))
}

// popLeaf detaches the rightmost leaf of the subtree at *pp. If the subtree
// becomes empty, *pp is set to nil and emptied is true.
func (v *Vector[T]) popLeaf(pp **vnode[T], depth int) (leaf *vnode[T], emptied bool) {
	node := mutableInternal(pp, v.degree)
	last := len(node.children) - 1
	assertThat(last >= 0, "attempt to pop leaf from uninitialized inner node")
	if depth == 1 {
		leaf = node.children[last]
		node.children[last] = nil
		node.children = node.children[:last]
	} else {
		var childEmptied bool
		leaf, childEmptied = v.popLeaf(&node.children[last], depth-1)
		if childEmptied {
			node.children = node.children[:last]
		}
	}
	if len(node.children) == 0 {
		*pp = nil
		return leaf, true
	}
	return leaf, false
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cow.vector: "+msg, msgargs...)
		panic(msg)
	}
}
