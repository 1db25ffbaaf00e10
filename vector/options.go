package vector

// DefaultBitsPerLevel is the number of index bits consumed per level of the trie,
// resulting in a branching factor of 32.
const DefaultBitsPerLevel = 5

type props struct {
	bits   uint // number of bits to use per level
	degree int  // degree is always 2 ^ bits
	mask   int  // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func propsWithBits(n int) props {
	p := props{bits: uint(n)}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

// init makes the zero value of props usable.
func (p props) init() props {
	if p.bits == 0 {
		return propsWithBits(DefaultBitsPerLevel)
	}
	return p
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to indirectly set the degree of the underlying trie of a vector.
// The degree of the trie will be 2^n. Accepted values are [2…5]; default is 5, i.e.
// a degree of 32. Values outside this range are clamped.
//
// Use it like this:
//
//     vec := vector.New[int](vector.BitsPerLevel(3))
//
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n < 2 {
			n = 2
		} else if n > DefaultBitsPerLevel {
			n = DefaultBitsPerLevel
		}
		return propsWithBits(n)
	}
	return Option{config: conf}
}
