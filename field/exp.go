package field

import (
	"math"

	"github.com/PayneJoe/koblitz-curves/poly"
)

// Exp raises f to the power encoded by e's bit pattern (e is itself a
// field element's underlying polynomial, reused here as an exponent
// vector), via Shoup's exponentiation algorithm (Handbook Algorithm
// 11.53): the exponent is split into l digits of r bits each, the
// low-order powers f^(2^j) are precomputed by repeated squaring, and the
// digit powers are folded in high to low using repeated modular
// composition by g(X) = X^(2^r).
//
// Exp panics if e encodes a value of degree >= M; that is a programming
// error (an out-of-range exponent), not a data error a caller recovers
// from.
func Exp(f Element, e poly.Poly) Element {
	if e.Degree() >= M {
		panic("field: Exp: exponent degree must be < M")
	}

	r := int(math.Ceil(float64(M) / math.Log2(float64(M))))
	digits := e.Chunks(r)
	l := len(digits)

	fPow2 := make([]Element, r)
	fPow2[0] = f
	for i := 1; i < r; i++ {
		fPow2[i] = fPow2[i-1].Square()
	}

	fn := make([]Element, l)
	for i := 0; i < l; i++ {
		fn[i] = One()
		for j := 0; j < r; j++ {
			mask := uint32(1) << uint(j)
			if digits[i]&mask == mask {
				fn[i] = fn[i].Mul(fPow2[j])
			}
		}
	}

	g := One().Shl(1)
	for i := 0; i < r; i++ {
		g = g.Square()
	}

	y := One()
	for i := l - 1; i >= 0; i-- {
		y = modularComposition(y, g)
		y = y.Mul(fn[i])
	}
	return y
}
