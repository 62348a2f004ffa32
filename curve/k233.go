package curve

import (
	"github.com/PayneJoe/koblitz-curves/field"
	"github.com/PayneJoe/koblitz-curves/poly"
)

// A2 and A6 are K-233's short Weierstrass coefficients: y^2+xy = x^3+a6
// (a2 = 0 for every NIST Koblitz binary curve).
var (
	A2 = field.Zero()
	A6 = field.One()
	// SqrtA6 is sqrt(a6), needed by the x-only Montgomery ladder's initial
	// doubling step. Since a6 = 1, its square root is 1.
	SqrtA6 = field.One()
)

// Identity is the point at infinity, (1, 0, 0) in this curve's López–Dahab
// representation.
var Identity = Point{X: field.One(), Y: field.Zero(), Z: field.Zero()}

// Generator is the base point of the K-233 prime-order subgroup.
var Generator = Point{
	X: field.Element(poly.Poly{
		1725572810, 2000923818, 1177071851, 1254338503,
		3682277809, 1791495317, 2034630957, 251,
	}),
	Y: field.Element(poly.Poly{
		691743371, 1573401319, 2498410245, 2411648772,
		520441339, 3254992135, 3793809428, 211,
	}),
	Z: field.One(),
}
