// Package curve implements the K-233 Koblitz curve E: y^2+xy = x^3+a6 over
// GF(2^233), in López–Dahab projective coordinates (x = X/Z, y = Y/Z^2).
package curve

import "github.com/PayneJoe/koblitz-curves/field"

// Point is a López–Dahab projective point. The zero value is not a valid
// point on the curve; use Identity for the point at infinity.
type Point struct {
	X, Y, Z field.Element
}

// IsAffine reports whether p is in normalized affine form (Z=1).
func (p Point) IsAffine() bool { return p.Z.IsOne() }

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool { return p == Identity }

// Equal reports whether p and q are the same representative (same X, Y,
// and Z) rather than merely projectively equivalent. Use ProjectivelyEqual
// to compare points that may carry different representatives of the same
// affine point.
func (p Point) Equal(q Point) bool { return p == q }

// ProjectivelyEqual reports whether p and q represent the same affine
// point, comparing x1/z1 against x2/z2 and y1/z1^2 against y2/z2^2 without
// computing either affine coordinate directly.
func (p Point) ProjectivelyEqual(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	if !p.X.Mul(q.Z).Equal(q.X.Mul(p.Z)) {
		return false
	}
	z1sq, z2sq := p.Z.Square(), q.Z.Square()
	return p.Y.Mul(z2sq).Equal(q.Y.Mul(z1sq))
}

// Neg returns the additive inverse of p: (x, y) -> (x, y+x) in affine
// terms, (X, Y+XZ, Z) projectively.
func (p Point) Neg() Point {
	if p.IsIdentity() {
		return Identity
	}
	return Point{X: p.X, Y: p.Y.Add(p.X.Mul(p.Z)), Z: p.Z}
}

// IsOnCurve reports whether p satisfies the curve's projective equation
// Y^2 + XYZ = X^3*Z + a2*X^2*Z^2 + a6*Z^4.
func (p Point) IsOnCurve() bool {
	lhs := p.Y.Square().Add(p.X.Mul(p.Y).Mul(p.Z))
	x2 := p.X.Square()
	x3z := x2.Mul(p.X).Mul(p.Z)
	z2 := p.Z.Square()
	rhs := x3z.Add(A2.Mul(x2).Mul(z2)).Add(A6.Mul(z2.Square()))
	return lhs.Equal(rhs)
}
