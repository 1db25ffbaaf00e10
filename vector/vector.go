package vector

import (
	"github.com/npillmayer/cow/maybe"
)

// Vector is a copy-on-write vector of items of type T.
// An empty instance is usable as an empty vector, i.e. this is legal:
//
//     var v vector.Vector[int]
//     v.Push(1)
//
// A Vector must not be copied by value, as copies would modify each other's
// nodes. Use Clone instead.
type Vector[T any] struct {
	props
	length int
	depth  int       // number of internal levels above the leafs of the trie
	root   *vnode[T] // trie of committed items; nil, a leaf or an internal node
	tail   *vnode[T] // always a leaf (after init)
}

// New creates an empty vector.
func New[T any](opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	v.init()
	return v
}

func (v *Vector[T]) init() {
	v.props = v.props.init()
	if v.tail == nil {
		v.tail = emptyExternal[T](v.degree)
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in v.
func (v *Vector[T]) Len() int {
	return v.length
}

// Depth returns the number of internal levels of the trie holding the items of v.
func (v *Vector[T]) Depth() int {
	return v.depth
}

// Clone returns a vector with the same items as v. Cloning is O(1), as v and the
// clone will share all of their nodes until either one of them is modified.
func (v *Vector[T]) Clone() *Vector[T] {
	v.init()
	w := &Vector[T]{
		props:  v.props,
		length: v.length,
		depth:  v.depth,
		root:   v.root.share(),
		tail:   v.tail.share(),
	}
	return w
}

// Last returns the last item of v, if any.
func (v *Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail.leafs[len(v.tail.leafs)-1])
}

// Get returns the item at position i. It panics if i is out of range.
func (v *Vector[T]) Get(i int) T {
	v.checkIndex(i)
	if i >= v.tailOffset() {
		return v.tail.leafs[i&v.mask]
	}
	node := v.root
	for shift := uint(v.depth) * v.bits; shift > 0; shift -= v.bits {
		node = node.children[(i>>shift)&v.mask]
	}
	return node.asExternal().leafs[i&v.mask]
}

// GetMut returns a pointer to the item at position i, which clients may use to
// modify the item. It panics if i is out of range.
//
// Nodes on the path to the item will be copied, if they are shared with clones
// of v. The pointer is valid until the next modification of v or the next call
// of v.Clone.
func (v *Vector[T]) GetMut(i int) *T {
	v.checkIndex(i)
	if i >= v.tailOffset() {
		return &makeMut(&v.tail).leafs[i&v.mask]
	}
	pp := &v.root
	for shift := uint(v.depth) * v.bits; shift > 0; shift -= v.bits {
		node := mutableInternal(pp, v.degree)
		pp = &node.children[(i>>shift)&v.mask]
	}
	(*pp).asExternal()
	return &makeMut(pp).leafs[i&v.mask]
}

// Set replaces the item at position i with value and returns the previous item.
// It panics if i is out of range.
func (v *Vector[T]) Set(i int, value T) T {
	p := v.GetMut(i)
	old := *p
	*p = value
	return old
}

// Push appends value as the new last item of v.
func (v *Vector[T]) Push(value T) {
	v.init()
	if len(v.tail.leafs) < v.degree { // just append value to tail
		tail := makeMut(&v.tail)
		tail.leafs = append(tail.leafs, value)
		v.length++
		return
	}
	// tail is full ⇒ have to move tail into trie
	oldTail := v.tail
	v.tail = newExternal(v.degree, value)
	idx := v.length - v.degree // index of the first item of oldTail
	v.length++
	if idx == 0 { // tail becomes the root
		assertThat(v.root == nil, "inconsistency: vector.root expected to be empty")
		tracer().Debugf("tail %s becomes root", oldTail)
		v.root = oldTail
		return
	}
	if idx < v.trieCapacity(v.depth) { // still space in root
		v.pushLeaf(&v.root, uint(v.depth)*v.bits, idx, oldTail)
		return
	}
	// root is full ⇒ wrap it into a new root
	var newRoot *vnode[T]
	node := mutableInternal(&newRoot, v.degree)
	node.children = append(node.children, v.root)
	v.root = newRoot
	v.depth++
	tracer().Debugf("trie grows to depth %d with %d items", v.depth, v.length)
	v.pushLeaf(&v.root, uint(v.depth)*v.bits, idx, oldTail)
}

// Pop removes the last item of v and returns it. If v is empty, Pop returns
// the zero value for T and false.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	if v.length == 1 || len(v.tail.leafs) > 1 {
		tail := makeMut(&v.tail)
		last := len(tail.leafs) - 1
		value := tail.leafs[last]
		tail.leafs[last] = zero
		tail.leafs = tail.leafs[:last]
		v.length--
		return value, true
	}
	// tail will be empty ⇒ refill it from the trie
	oldTail := v.tail
	value := oldTail.leafs[0]
	if v.length-1 == v.degree { // root becomes the tail
		tracer().Debugf("root %s becomes tail", v.root)
		v.tail = v.root.asExternal()
		v.root = nil
		v.depth = 0
	} else {
		leaf, _ := v.popLeaf(&v.root, v.depth)
		v.tail = leaf.asExternal()
		if !v.root.leaf && len(v.root.children) == 1 {
			v.root = v.root.children[0]
			v.depth--
			tracer().Debugf("trie shrinks to depth %d with %d items", v.depth, v.length-1)
		}
	}
	oldTail.release()
	v.length--
	return value, true
}

// SwapRemove removes the item at position i and returns it. The last item of v
// takes its place. SwapRemove panics if i is out of range, leaving v unchanged.
func (v *Vector[T]) SwapRemove(i int) T {
	v.checkIndex(i)
	last, _ := v.Pop()
	if i == v.length { // removed the last item
		return last
	}
	return v.Set(i, last)
}

func (v *Vector[T]) tailOffset() int {
	return v.length - len(v.tail.leafs)
}
