package field

import "github.com/PayneJoe/koblitz-curves/poly"

// Inv computes the multiplicative inverse of a via Guide to Elliptic Curve
// Cryptography Algorithm 2.48, the binary-Euclidean almost-inverse
// algorithm: u and v track the polynomial remainder sequence of a and the
// field modulus (kept at double width, unreduced), while g1 and g2 track
// the corresponding Bezout coefficients as fully reduced field elements.
func Inv(a Element) (Element, error) {
	if a.IsZero() {
		return Element{}, &ArithmeticError{Kind: ZeroInverse}
	}
	if a.IsOne() {
		return One(), nil
	}

	u := poly.Poly(a).Widen()
	v := modulusF.Widen()
	g1, g2 := One(), Zero()

	for !u.IsOne() {
		j := u.Degree() - v.Degree()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u = u.Add(v.Shl(j))
		g1 = g1.Add(g2.Shl(j))
	}
	return g1, nil
}
