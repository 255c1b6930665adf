// Package bigint implements a fixed-width 128-bit unsigned integer with a
// truncating square and in-place modular reduction, for generator algorithms
// whose multiply-mod steps exceed native 64-bit range.
package bigint

import (
	"fmt"
	"math/bits"
)

const limbMask uint64 = 0xFFFFFFFF

// BigInt128 is a 128-bit unsigned magnitude stored as four 32-bit limbs in
// 64-bit words, least significant limb first. Every limb stays within
// [0, 2^32) after any operation; Square and Mod mutate in place. It is a
// plain value type and copies like any fixed-size record.
type BigInt128 struct {
	Limbs [4]uint64
}

// New builds a BigInt128 from four limbs, least significant first. Limbs are
// masked to 32 bits.
func New(d0, d1, d2, d3 uint64) BigInt128 {
	return BigInt128{Limbs: [4]uint64{d0 & limbMask, d1 & limbMask, d2 & limbMask, d3 & limbMask}}
}

// Square replaces the value with its own square modulo 2^128. The schoolbook
// product is accumulated into eight limbs; each partial product's carry is
// pushed into the next position and the current limb re-masked, then the
// result is truncated back to four limbs. Callers relying on this for
// modular exponentiation expect the wraparound at 2^128.
func (b *BigInt128) Square() {
	var product [8]uint64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			product[i+j] += b.Limbs[i] * b.Limbs[j]
			product[i+j+1] += product[i+j] >> 32
			product[i+j] &= limbMask
		}
	}
	for i := 0; i < 4; i++ {
		b.Limbs[i] = product[i]
	}
}

// Mod reduces the value modulo n in place, leaving the remainder in the low
// two limbs and zeroing the top two. A value already smaller than n is left
// untouched. Otherwise the limbs are folded most significant first with a
// running remainder r = (r*2^32 + limb) mod n, using 128-bit intermediates
// from math/bits so the multiply cannot overflow.
func (b *BigInt128) Mod(n uint64) {
	hi := b.Limbs[3]<<32 | b.Limbs[2]
	lo := b.Limbs[1]<<32 | b.Limbs[0]
	if hi == 0 && lo < n {
		return
	}
	var r uint64
	for i := 3; i >= 0; i-- {
		// r < n, so the 128-bit dividend's high word stays below n and
		// Div64 cannot fault.
		ph, pl := bits.Mul64(r, 1<<32)
		pl, carry := bits.Add64(pl, b.Limbs[i], 0)
		_, r = bits.Div64(ph+carry, pl, n)
	}
	b.Limbs[3] = 0
	b.Limbs[2] = 0
	b.Limbs[1] = r >> 32
	b.Limbs[0] = r & limbMask
}

// String renders the limbs most significant first, a debugging aid.
func (b BigInt128) String() string {
	return fmt.Sprintf("%d %d %d %d", b.Limbs[3], b.Limbs[2], b.Limbs[1], b.Limbs[0])
}
