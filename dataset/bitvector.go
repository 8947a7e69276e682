package dataset

import "math/bits"

/*
Bitvector is a fixed-length vector of booleans packed into 64-bit words.
The Table keeps one per column, with bit i set when row i holds true for
the column, so that conjunctions of conditions reduce to bitwise ANDs.
*/
type Bitvector struct {
	words []uint64
	n     int
}

func newBitvector(n int) Bitvector {
	return Bitvector{words: make([]uint64, (n+63)/64), n: n}
}

func fullBitvector(n int) Bitvector {
	v := newBitvector(n)
	for i := range v.words {
		v.words[i] = ^uint64(0)
	}
	v.clearTail()
	return v
}

/*
Len returns the number of bits in the vector.
*/
func (v Bitvector) Len() int {
	return v.n
}

/*
Get returns the bit at index i.
*/
func (v Bitvector) Get(i int) bool {
	return v.words[i/64]&(1<<(uint(i)%64)) != 0
}

func (v *Bitvector) set(i int) {
	v.words[i/64] |= 1 << (uint(i) % 64)
}

/*
OnesCount returns the number of set bits.
*/
func (v Bitvector) OnesCount() int {
	count := 0
	for _, w := range v.words {
		count += bits.OnesCount64(w)
	}
	return count
}

/*
Indices returns the indices of the set bits in ascending order.
*/
func (v Bitvector) Indices() []int {
	indices := make([]int, 0, v.OnesCount())
	for wi, w := range v.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			indices = append(indices, wi*64+b)
			w &= w - 1
		}
	}
	return indices
}

/*
Intersect sets the receiver to its intersection with other when value is
true, or with other's complement when value is false.
*/
func (v *Bitvector) Intersect(other Bitvector, value bool) {
	if value {
		for i := range v.words {
			v.words[i] &= other.words[i]
		}
		return
	}
	for i := range v.words {
		v.words[i] &^= other.words[i]
	}
	v.clearTail()
}

/*
IntersectCount returns the size of the intersection of the receiver with
other (value true) or with other's complement (value false), without
modifying either vector.
*/
func (v Bitvector) IntersectCount(other Bitvector, value bool) int {
	count := 0
	if value {
		for i := range v.words {
			count += bits.OnesCount64(v.words[i] & other.words[i])
		}
		return count
	}
	for i := range v.words {
		w := v.words[i] &^ other.words[i]
		if i == len(v.words)-1 {
			w &= tailMask(v.n)
		}
		count += bits.OnesCount64(w)
	}
	return count
}

/*
Clone returns an independent copy of the vector.
*/
func (v Bitvector) Clone() Bitvector {
	words := make([]uint64, len(v.words))
	copy(words, v.words)
	return Bitvector{words: words, n: v.n}
}

// grow returns a vector of n bits holding the receiver's bits. Word
// storage doubles so repeated row appends stay amortized-cheap.
func (v Bitvector) grow(n int) Bitvector {
	needed := (n + 63) / 64
	words := v.words
	if cap(words) < needed {
		words = make([]uint64, needed, 2*needed)
		copy(words, v.words)
	} else {
		words = words[:needed]
	}
	return Bitvector{words: words, n: n}
}

// Bits past n in the last word must stay zero so OnesCount stays honest.
func (v *Bitvector) clearTail() {
	if len(v.words) == 0 {
		return
	}
	v.words[len(v.words)-1] &= tailMask(v.n)
}

func tailMask(n int) uint64 {
	if n%64 == 0 {
		return ^uint64(0)
	}
	return (1 << (uint(n) % 64)) - 1
}
