package vector

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestTrieShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	v := New[int](BitsPerLevel(2))
	for i := 0; i < 21; i++ {
		v.Push(i)
	}
	t.Log(printVec(v))
	if v.Depth() != 2 {
		t.Fatalf("expected depth of 21 items with degree 4 to be 2, is %d", v.Depth())
	}
	if len(v.root.children) != 2 || len(v.root.children[1].children) != 1 {
		t.Errorf("expected root to have a full and a fresh branch, is %s", v.root)
	}
	if len(v.tail.leafs) != 1 || v.tail.leafs[0] != 20 {
		t.Errorf("expected tail to be [20], is %s", v.tail)
	}
	w := v.Clone()
	w.Set(5, -5)
	t.Log(printVec(w))
	if v.root.children[1] != w.root.children[1] {
		t.Error("expected untouched branch to be shared between clones")
	}
}

func TestTrieCapacity(t *testing.T) {
	v := New[int](BitsPerLevel(2))
	for depth, expected := range []int{4, 16, 64, 256} {
		if c := v.trieCapacity(depth); c != expected {
			t.Errorf("expected capacity of trie with depth %d to be %d, is %d", depth, expected, c)
		}
	}
}

// --- Print vector trie -----------------------------------------------------

func printVec[T any](v *Vector[T]) string {
	header := fmt.Sprintf("\nVector(length=%d, depth=%d, degree=%d)\n", v.length, v.depth, v.degree)
	tail := fmt.Sprintf("       tail=%s\n", v.tail)
	printer := tp.New()
	printNode(printer, v.root, v.depth, 0, v.degree)
	return header + tail + printer.String() + "\n"
}

func printNode[T any](printer tp.Tree, node *vnode[T], h, j, k int) {
	if node == nil {
		return
	}
	pp := capacity(k, h+1)
	label := node.String() + fmt.Sprintf("  #%d  %d…%d", node.owners.Load(), j, j+pp-1)
	if node.leaf {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	pp = capacity(k, h)
	for i, ch := range node.children {
		printNode(branch, ch, h-1, (i*pp)+j, k)
	}
}

func capacity(k, height int) int {
	c := 1
	for ; height > 0; height-- {
		c *= k
	}
	return c
}
