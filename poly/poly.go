// Package poly implements fixed-width binary polynomial arithmetic over
// GF(2): the representation shared by every binary field this module
// supports, before any field-specific modular reduction is applied.
//
// A Poly holds up to 256 coefficients as 8 little-endian 32-bit words
// (Poly[0] holds X^0..X^31, and so on). Products and squares overflow into
// a Poly2, the unreduced double-width result, which the field package
// folds back down via its trinomial-specific reduce.
package poly

import "math/bits"

// N is the number of 32-bit words in a Poly.
const N = 8

// wordSize is the bit width of a single word (mirrors internal/word.Size).
const wordSize = 32

// Poly is a binary polynomial of degree < N*wordSize, stored little-endian
// by word.
type Poly [N]uint32

// Poly2 is the unreduced double-width result of a Mul or Square.
type Poly2 [2 * N]uint32

// Zero is the additive identity.
func Zero() Poly { return Poly{} }

// One is the multiplicative identity.
func One() Poly {
	var p Poly
	p[0] = 1
	return p
}

// IsZero reports whether p has no nonzero coefficients.
func (p Poly) IsZero() bool {
	for _, w := range p {
		if w != 0 {
			return false
		}
	}
	return true
}

// Bit returns the coefficient of X^i as 0 or 1.
func (p Poly) Bit(i int) uint32 {
	return (p[i/wordSize] >> uint(i%wordSize)) & 1
}

// SetBit sets the coefficient of X^i to 0 or 1.
func (p *Poly) SetBit(i int, v uint32) {
	w, b := i/wordSize, uint(i%wordSize)
	if v&1 != 0 {
		p[w] |= 1 << b
	} else {
		p[w] &^= 1 << b
	}
}

// Degree returns the index of the highest nonzero coefficient, or -1 for
// the zero polynomial.
func (p Poly) Degree() int {
	for w := N - 1; w >= 0; w-- {
		if p[w] != 0 {
			return w*wordSize + bits.Len32(p[w]) - 1
		}
	}
	return -1
}

// Add returns p+q (XOR, since addition and subtraction coincide over
// GF(2)).
func (p Poly) Add(q Poly) Poly {
	var r Poly
	for i := range r {
		r[i] = p[i] ^ q[i]
	}
	return r
}

// Equal reports whether p and q represent the same polynomial.
func (p Poly) Equal(q Poly) bool { return p == q }

// Add returns p+q for double-width values.
func (p Poly2) Add(q Poly2) Poly2 {
	var r Poly2
	for i := range r {
		r[i] = p[i] ^ q[i]
	}
	return r
}

// AddPoly adds a single-width q into the low half of p.
func (p Poly2) AddPoly(q Poly) Poly2 {
	r := p
	for i := 0; i < N; i++ {
		r[i] ^= q[i]
	}
	return r
}

// Degree returns the index of the highest nonzero coefficient of p, or -1
// for the zero polynomial.
func (p Poly2) Degree() int {
	for w := 2*N - 1; w >= 0; w-- {
		if p[w] != 0 {
			return w*wordSize + bits.Len32(p[w]) - 1
		}
	}
	return -1
}

// IsOne reports whether p represents the constant polynomial 1.
func (p Poly2) IsOne() bool {
	if p[0] != 1 {
		return false
	}
	for i := 1; i < len(p); i++ {
		if p[i] != 0 {
			return false
		}
	}
	return true
}

// Lo returns the low N words of p as a Poly.
func (p Poly2) Lo() Poly {
	var r Poly
	copy(r[:], p[:N])
	return r
}

// Hi returns the high N words of p as a Poly.
func (p Poly2) Hi() Poly {
	var r Poly
	copy(r[:], p[N:])
	return r
}

// Widen embeds p into the low half of a Poly2, the representation the
// field layer's extended-Euclid inversion and shift-then-reduce operators
// need their operands promoted to.
func (p Poly) Widen() Poly2 {
	var r Poly2
	copy(r[:N], p[:])
	return r
}

// Chunks splits p's bit string into ceil(N*wordSize/r) little-endian r-bit
// digits: chunks[0] holds bits 0..r-1, chunks[1] holds bits r..2r-1, and so
// on. This is the digit decomposition Shoup's exponentiation algorithm
// (Handbook Algorithm 11.53) consumes its exponent by.
func (p Poly) Chunks(r int) []uint32 {
	total := N * wordSize
	l := (total + r - 1) / r
	out := make([]uint32, l)
	for i := 0; i < l; i++ {
		var digit uint32
		for b := 0; b < r; b++ {
			bitIndex := i*r + b
			if bitIndex >= total {
				break
			}
			if p.Bit(bitIndex) == 1 {
				digit |= 1 << uint(b)
			}
		}
		out[i] = digit
	}
	return out
}

// Split separates p into its even- and odd-indexed coefficient streams:
// even.Bit(i) = p.Bit(2*i) and odd.Bit(i) = p.Bit(2*i+1). This un-does the
// bit interleaving that Square performs, and is the building block field
// square roots are extracted from in characteristic 2 (every element is
// uniquely c_even(X)^2 + X*c_odd(X)^2).
func (p Poly) Split() (even, odd Poly) {
	deg := p.Degree()
	for i := 0; i <= deg; i++ {
		if p.Bit(i) == 0 {
			continue
		}
		if i%2 == 0 {
			even.SetBit(i/2, 1)
		} else {
			odd.SetBit((i-1)/2, 1)
		}
	}
	return
}
