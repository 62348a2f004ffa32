package poly

import "github.com/PayneJoe/koblitz-curves/internal/word"

// MulWord multiplies p by a single machine word, per Handbook of Applied
// and Hyperelliptic Curve Cryptography Algorithm 11.34: shift-and-add over
// the word's bits. The accumulator and the shifted operand are both kept
// at Poly2 width throughout, since p*w can reach degree up to
// (N*wordSize-1)+(wordSize-1), past what a single Poly can hold.
func (p Poly) MulWord(w uint32) Poly2 {
	var c Poly2
	left := p.Widen()
	mask := uint32(1)
	for j := 0; j < wordSize; j++ {
		if w&mask == mask {
			c = c.Add(left)
		}
		if j != wordSize-1 {
			left = left.Shl(1)
		}
		mask <<= 1
	}
	return c
}

// windowSize is the digit width used by Mul's comb table, per Handbook
// Algorithm 11.37.
const windowSize = 4

// Mul multiplies p by q using a width-4 windowed comb method (Handbook
// Algorithm 11.37): a table of p*u for every possible 4-bit digit u is
// built once, then q's words are consumed high nibble to low, shifting the
// accumulator by the window width and folding in the table entry for each
// digit.
func (p Poly) Mul(q Poly) Poly2 {
	capacity := 1 << windowSize
	table := make([]Poly2, capacity)
	for u := 1; u < capacity; u++ {
		if u%2 == 0 {
			table[u] = table[u/2].Shl(1)
		} else {
			table[u] = table[u-1].AddPoly(p)
		}
	}

	var c Poly2
	for j := wordSize/windowSize - 1; j >= 0; j-- {
		for i := 0; i < N; i++ {
			digit := (q[i] >> uint(j*windowSize)) & uint32(capacity-1)
			c = c.Add(table[digit].Shl(i * wordSize))
		}
		if j != 0 {
			c = c.Shl(windowSize)
		}
	}
	return c
}

// Square returns p*p. Because squaring never carries over GF(2), each
// 32-bit word of p expands independently into a 64-bit block (Guide to
// ECC Algorithm 2.39), so no accumulation step is needed.
func (p Poly) Square() Poly2 {
	var r Poly2
	for i := 0; i < N; i++ {
		hi, lo := word.Square(p[i])
		r[2*i] = lo
		r[2*i+1] = hi
	}
	return r
}
