// Package tauadic implements arithmetic in Z[τ], the ring of integers
// generated by the Frobenius endomorphism τ of a Koblitz curve, and the
// τ-adic (non-adjacent-form) scalar expansions built on top of it.
//
// For K-233 (a2 = 0) τ satisfies τ^2 - μτ + 2 = 0 with μ = -1, so every
// element of Z[τ] is uniquely a0 + a1·τ for integers a0, a1. Coefficients
// are arbitrary-precision: a scalar reduced modulo δ = (τ^233-1)/(τ-1)
// still needs roughly half the bit width of the group order to hold its
// two coordinates, well beyond what a fixed 64-bit word can carry.
package tauadic

import "math/big"

// mu and char are the coefficients of τ's characteristic polynomial
// τ^2 - μτ + char for K-233 (a2 = 0 forces μ = -1, char = 2 for every
// NIST Koblitz binary curve).
var (
	mu   = big.NewInt(-1)
	char = big.NewInt(2)
)

// ZTau is an element a0 + a1·τ of Z[τ].
type ZTau struct {
	A0, A1 *big.Int
}

func newZTau(a0, a1 int64) ZTau {
	return ZTau{A0: big.NewInt(a0), A1: big.NewInt(a1)}
}

// Zero is the additive identity.
func Zero() ZTau { return newZTau(0, 0) }

// One is the multiplicative identity.
func One() ZTau { return newZTau(1, 0) }

// Tau is τ itself, 0 + 1·τ.
func Tau() ZTau { return newZTau(0, 1) }

// IsZero reports whether z is the zero element.
func (z ZTau) IsZero() bool { return z.A0.Sign() == 0 && z.A1.Sign() == 0 }

// Equal reports whether z and w denote the same element.
func (z ZTau) Equal(w ZTau) bool { return z.A0.Cmp(w.A0) == 0 && z.A1.Cmp(w.A1) == 0 }

// Add returns z+w.
func (z ZTau) Add(w ZTau) ZTau {
	return ZTau{A0: new(big.Int).Add(z.A0, w.A0), A1: new(big.Int).Add(z.A1, w.A1)}
}

// Sub returns z-w.
func (z ZTau) Sub(w ZTau) ZTau {
	return ZTau{A0: new(big.Int).Sub(z.A0, w.A0), A1: new(big.Int).Sub(z.A1, w.A1)}
}

// Mul returns z*w, using τ^2 = μτ - char to fold the cross term back down
// to the a0 + a1·τ basis.
func (z ZTau) Mul(w ZTau) ZTau {
	a0 := new(big.Int).Sub(
		new(big.Int).Mul(z.A0, w.A0),
		new(big.Int).Mul(char, new(big.Int).Mul(z.A1, w.A1)),
	)
	a1 := new(big.Int).Add(
		new(big.Int).Add(new(big.Int).Mul(z.A0, w.A1), new(big.Int).Mul(z.A1, w.A0)),
		new(big.Int).Mul(mu, new(big.Int).Mul(z.A1, w.A1)),
	)
	return ZTau{A0: a0, A1: a1}
}

// Neg returns -z.
func (z ZTau) Neg() ZTau {
	return ZTau{A0: new(big.Int).Neg(z.A0), A1: new(big.Int).Neg(z.A1)}
}

// Conjugate returns z̄, the image of z under τ ↦ μ-τ.
func (z ZTau) Conjugate() ZTau {
	a0 := new(big.Int).Add(z.A0, new(big.Int).Mul(mu, z.A1))
	return ZTau{A0: a0, A1: new(big.Int).Neg(z.A1)}
}

// Norm returns N(z) = z·z̄ = a0^2 + char·a1^2 + μ·a0·a1.
func (z ZTau) Norm() *big.Int {
	a0sq := new(big.Int).Mul(z.A0, z.A0)
	a1sq := new(big.Int).Mul(char, new(big.Int).Mul(z.A1, z.A1))
	cross := new(big.Int).Mul(mu, new(big.Int).Mul(z.A0, z.A1))
	return new(big.Int).Add(new(big.Int).Add(a0sq, a1sq), cross)
}

// Pow returns z^n via square-and-multiply.
func (z ZTau) Pow(n int) ZTau {
	result := One()
	base := z
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// isOdd reports whether a0 is odd.
func (z ZTau) isOdd() bool { return z.A0.Bit(0) == 1 }

// halveEven returns a/2 for a known-even a.
func halveEven(a *big.Int) *big.Int {
	return new(big.Int).Quo(a, big.NewInt(2))
}

// divInt returns z/n as a rational pair, n a nonzero plain integer.
func (z ZTau) divInt(n *big.Int) RTau {
	return RTau{
		A0: new(big.Rat).SetFrac(z.A0, n),
		A1: new(big.Rat).SetFrac(z.A1, n),
	}
}

// QuoRem returns (q, r) such that z = q*w + r, with r the unique element
// of minimal norm in its residue class — Algorithm 15.11 of the Handbook
// of Applied and Hyperelliptic Curve Cryptography.
func (z ZTau) QuoRem(w ZTau) (q, r ZTau) {
	n := w.Norm()
	g := z.Mul(w.Conjugate())
	q = RoundOff(g.divInt(n))
	r = z.Sub(q.Mul(w))
	return q, r
}

// Reduce returns z mod w, the remainder of QuoRem.
func (z ZTau) Reduce(w ZTau) ZTau {
	_, r := z.QuoRem(w)
	return r
}
