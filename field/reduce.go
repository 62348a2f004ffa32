package field

import "github.com/PayneJoe/koblitz-curves/poly"

// Reduce folds an unreduced double-width product or square back down to a
// canonical Element, using the fast trinomial-specific reduction of Guide
// to Elliptic Curve Cryptography Algorithm 2.42 for X^233+X^74+1. The
// shift amounts (23, 9, 1, 31, and the word-7 fixup) are fixed by that
// trinomial's exponents and this field's 32-bit word width; they are not
// recomputed from M and the trinomial exponent at runtime.
func Reduce(ele poly.Poly2) Element {
	c := ele
	for i := 2*poly.N - 1; i >= poly.N; i-- {
		c[i-8] ^= c[i] << 23
		c[i-7] ^= c[i] >> 9
		c[i-5] ^= c[i] << 1
		c[i-4] ^= c[i] >> 31
	}
	t := c[7] >> 9
	c[0] ^= t
	c[2] ^= t << 10
	c[3] ^= t >> 22
	c[7] &= 0x1ff

	var e Element
	copy(e[:], c[:poly.N])
	return e
}
