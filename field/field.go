// Package field implements GF(2^233), the base field of the K-233 Koblitz
// curve, as the quotient GF(2)[X]/(X^233+X^74+1). Every Element carries its
// own modular reduction; callers never see an unreduced poly.Poly2 except
// through Reduce itself.
package field

import "github.com/PayneJoe/koblitz-curves/poly"

// M is the degree of the field's defining trinomial.
const M = 233

// modulusF is the defining trinomial X^233+X^74+1 itself (bit 233 sits in
// word 7's bit 9, bit 74 in word 2's bit 10, bit 0 in word 0's bit 0).
// Reduce does not use this form directly — it folds the trinomial in via
// fixed shift constants — but Inv needs the modulus as an explicit
// polynomial for its Euclidean remainder sequence.
var modulusF = poly.Poly{1, 0, 1024, 0, 0, 0, 0, 512}

// sqrtX is the precomputed square root of X in this field, used by Sqrt.
var sqrtX = poly.Poly{0, 1, 32, 2097152, 67108864, 2147483648, 0, 16}

// Element is a field element, represented as its canonical degree-<233
// reduced polynomial. It is a named array type rather than a struct
// wrapper: a fixed-width single-modulus field element carries no state
// beyond its coefficients.
type Element poly.Poly

// Zero is the additive identity.
func Zero() Element { return Element{} }

// One is the multiplicative identity.
func One() Element { return Element(poly.One()) }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return poly.Poly(e).IsZero() }

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool { return e == One() }

// Equal reports whether e and f are the same field element.
func (e Element) Equal(f Element) bool { return e == f }

// Bit returns the coefficient of X^i in e's canonical representative.
func (e Element) Bit(i int) uint32 { return poly.Poly(e).Bit(i) }

// Add returns e+f.
func (e Element) Add(f Element) Element {
	if e.IsZero() {
		return f
	}
	if f.IsZero() {
		return e
	}
	return Element(poly.Poly(e).Add(poly.Poly(f)))
}

// Neg returns -e. Characteristic 2 makes negation the identity function.
func (e Element) Neg() Element { return e }

// Sub returns e-f, which coincides with e+f in characteristic 2.
func (e Element) Sub(f Element) Element {
	if e.IsZero() {
		return f.Neg()
	}
	if f.IsZero() {
		return e
	}
	return Element(poly.Poly(e).Add(poly.Poly(f)))
}

// Mul returns e*f, reduced modulo the field's defining trinomial.
func (e Element) Mul(f Element) Element {
	if e.IsZero() || f.IsZero() {
		return Zero()
	}
	if e.IsOne() {
		return f
	}
	if f.IsOne() {
		return e
	}
	if e == f {
		return e.Square()
	}
	return Reduce(poly.Poly(e).Mul(poly.Poly(f)))
}

// Square returns e*e.
func (e Element) Square() Element {
	if e.IsZero() {
		return Zero()
	}
	if e.IsOne() {
		return One()
	}
	return Reduce(poly.Poly(e).Square())
}

// Shl returns e shifted left by shift bits and reduced.
func (e Element) Shl(shift int) Element {
	return Reduce(poly.Poly(e).Widen().Shl(shift))
}

// Shr returns e shifted right by shift bits and reduced.
func (e Element) Shr(shift int) Element {
	return Reduce(poly.Poly(e).Widen().Shr(shift))
}

// Bytes returns the 32-byte big-endian encoding of e: one byte per octet
// across the full 8-word container, high word first. Only the low 233
// bits are ever nonzero for a reduced element.
func (e Element) Bytes() []byte {
	out := make([]byte, poly.N*4)
	for i := 0; i < poly.N; i++ {
		w := e[i]
		off := len(out) - (i+1)*4
		out[off] = byte(w >> 24)
		out[off+1] = byte(w >> 16)
		out[off+2] = byte(w >> 8)
		out[off+3] = byte(w)
	}
	return out
}

// FromBytes decodes a big-endian byte slice of at most 32 bytes into an
// Element. It returns a DegreeOverflow ArithmeticError if the input is
// longer than 32 bytes or encodes a value of degree >= M.
func FromBytes(b []byte) (Element, error) {
	if len(b) > poly.N*4 {
		return Element{}, &ArithmeticError{Kind: DegreeOverflow, Detail: "input longer than 32 bytes"}
	}
	padded := make([]byte, poly.N*4)
	copy(padded[poly.N*4-len(b):], b)
	var e Element
	for i := 0; i < poly.N; i++ {
		off := len(padded) - (i+1)*4
		e[i] = uint32(padded[off])<<24 | uint32(padded[off+1])<<16 | uint32(padded[off+2])<<8 | uint32(padded[off+3])
	}
	if poly.Poly(e).Degree() >= M {
		return Element{}, &ArithmeticError{Kind: DegreeOverflow, Detail: "decoded degree >= M"}
	}
	return e, nil
}
