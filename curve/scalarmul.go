package curve

import (
	"github.com/PayneJoe/koblitz-curves/field"
	"github.com/PayneJoe/koblitz-curves/poly"
)

// ScalarMul computes [k]P by plain double-and-add over P's bit pattern,
// high bit to low. k's underlying polynomial is reused as the scalar's
// binary digit sequence, the same convention the τ-adic evaluator and
// FastScalarMul's test vectors both use. This is the generic reference
// path the x-only ladder (FastScalarMul) is checked against: both must
// return projectively-equal points for the same (P, k).
func ScalarMul(p Point, k field.Element) Point {
	if k.IsZero() || p.IsIdentity() {
		return Identity
	}
	if k.IsOne() {
		return p
	}
	deg := poly.Poly(k).Degree()
	result := Identity
	for i := deg; i >= 0; i-- {
		result = Double(result)
		if k.Bit(i) == 1 {
			result = Add(result, p)
		}
	}
	return result
}

// affineXY returns p's affine coordinates, normalizing through Z if
// necessary.
func affineXY(p Point) (x, y field.Element) {
	if p.IsAffine() {
		return p.X, p.Y
	}
	zInv, _ := field.Inv(p.Z)
	return p.X.Mul(zInv), p.Y.Mul(zInv.Square())
}

// montDouble is the x-only doubling step of the Montgomery ladder:
// (X,Z) -> ((X^2+sqrt(a6)*Z^2)^2, X^2*Z^2).
func montDouble(x, z field.Element) (field.Element, field.Element) {
	x2, z2 := x.Square(), z.Square()
	newX := x2.Add(SqrtA6.Mul(z2)).Square()
	newZ := x2.Mul(z2)
	return newX, newZ
}

// montAdd is the x-only differential addition step: given (Xn,Zn),
// (Xm,Zm) with Pm = Pn + diff (diff the known affine x of P), it returns
// the x-only coordinates of Pn + Pm.
func montAdd(xn, zn, xm, zm, diff field.Element) (field.Element, field.Element) {
	xmzn := xm.Mul(zn)
	xnzm := xn.Mul(zm)
	zSum := xmzn.Add(xnzm).Square()
	newX := zSum.Mul(diff).Add(xmzn.Mul(xnzm))
	return newX, zSum
}

// FastScalarMul computes [k]P using the x-only Montgomery ladder with
// y-coordinate recovery at the end, avoiding any field inversion inside
// the ladder's main loop.
func FastScalarMul(p Point, k field.Element) Point {
	if k.IsZero() || p.IsIdentity() {
		return Identity
	}
	if k.IsOne() {
		return p
	}

	xP, yP := affineXY(p)

	xn, zn := xP, field.One()
	xm, zm := montDouble(xP, field.One())

	deg := poly.Poly(k).Degree()
	for i := deg - 1; i >= 0; i-- {
		if k.Bit(i) == 0 {
			xm, zm = montAdd(xn, zn, xm, zm, xP)
			xn, zn = montDouble(xn, zn)
		} else {
			xn, zn = montAdd(xn, zn, xm, zm, xP)
			xm, zm = montDouble(xm, zm)
		}
	}

	znInv, _ := field.Inv(zn)
	xnAff := xn.Mul(znInv)
	zmInv, _ := field.Inv(zm)
	xmAff := xm.Mul(zmInv)

	t1 := xnAff.Add(xP)
	inner := t1.Mul(xmAff.Add(xP)).Add(xP.Square()).Add(yP)
	xPInv, _ := field.Inv(xP)
	yn := t1.Mul(inner).Mul(xPInv).Add(yP)

	return Point{X: xnAff, Y: yn, Z: field.One()}
}
