package field

import "github.com/PayneJoe/koblitz-curves/poly"

// Sqrt returns the unique square root of a: sqrt(f) = f_even + sqrt(X)*f_odd,
// where f_even/f_odd are a's even- and odd-indexed coefficient streams.
// This holds because squaring is a field automorphism in characteristic 2,
// so every element decomposes uniquely as c_even(X)^2 + X*c_odd(X)^2.
func Sqrt(a Element) Element {
	even, odd := poly.Poly(a).Split()
	return Element(even).Add(Reduce(odd.Mul(sqrtX)))
}
