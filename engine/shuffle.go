package engine

// The shuffle filters treat src as nelem fixed-width elements followed by
// up to typeSize-1 leftover bytes. Whole elements are transposed; leftover
// bytes are copied through unchanged so the filters stay exact inverses
// for any input length. All four functions require len(dst) == len(src).

// shuffleBytes writes the byte-transposed form of src into dst: the n-th
// byte of every element is grouped together.
func shuffleBytes(dst, src []byte, typeSize int) {
	nelem := len(src) / typeSize
	split := nelem * typeSize
	for j := 0; j < typeSize; j++ {
		for i := 0; i < nelem; i++ {
			dst[j*nelem+i] = src[i*typeSize+j]
		}
	}
	copy(dst[split:], src[split:])
}

// unshuffleBytes is the inverse of shuffleBytes.
func unshuffleBytes(dst, src []byte, typeSize int) {
	nelem := len(src) / typeSize
	split := nelem * typeSize
	for j := 0; j < typeSize; j++ {
		for i := 0; i < nelem; i++ {
			dst[i*typeSize+j] = src[j*nelem+i]
		}
	}
	copy(dst[split:], src[split:])
}

// bitShuffle transposes src at bit granularity: bit b of element i moves
// to bit position b*nelem+i of the output.
func bitShuffle(dst, src []byte, typeSize int) {
	nelem := len(src) / typeSize
	nbits := typeSize * 8
	split := nelem * typeSize

	clear(dst[:split])
	for i := 0; i < nelem; i++ {
		for b := 0; b < nbits; b++ {
			if src[i*typeSize+b>>3]&(1<<(b&7)) != 0 {
				pos := b*nelem + i
				dst[pos>>3] |= 1 << (pos & 7)
			}
		}
	}
	copy(dst[split:], src[split:])
}

// bitUnshuffle is the inverse of bitShuffle.
func bitUnshuffle(dst, src []byte, typeSize int) {
	nelem := len(src) / typeSize
	nbits := typeSize * 8
	split := nelem * typeSize

	clear(dst[:split])
	for i := 0; i < nelem; i++ {
		for b := 0; b < nbits; b++ {
			pos := b*nelem + i
			if src[pos>>3]&(1<<(pos&7)) != 0 {
				dst[i*typeSize+b>>3] |= 1 << (b & 7)
			}
		}
	}
	copy(dst[split:], src[split:])
}
