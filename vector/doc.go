/*
Package vector implements a copy-on-write vector, designed for use-cases
similar to Go slices.

A vector is a trie of fixed-size blocks, with a tail buffer holding the most
recently appended items. Appending and removing at the end are amortized O(1),
indexed access is O(log₃₂ n).

Vectors may be cloned in O(1):

    v := vector.New[int]()
    v.Push(1)
    w := v.Clone()
    w.Set(0, 42)       // v.Get(0) still returns 1

Clones share their nodes. A write to one of them copies the nodes on the path
to the modified item, everything else stays shared. Every node carries an
atomic owner count, so clones may be handed to different goroutines. A single
vector value must not be mutated concurrently, though, and must not be copied
by value: use Clone.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.vector'.
func tracer() tracing.Trace {
	return tracing.Select("cow.vector")
}
