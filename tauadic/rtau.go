package tauadic

import "math/big"

// RTau is an element a0 + a1·τ of Q(τ), the field of fractions of Z[τ].
// Division in Z[τ] goes through here: compute the exact quotient in
// Q(τ), then round to the closest lattice point.
type RTau struct {
	A0, A1 *big.Rat
}

var (
	ratHalf  = big.NewRat(1, 2)
	ratOne   = big.NewRat(1, 1)
	ratTwo   = big.NewRat(2, 1)
	ratThree = big.NewRat(3, 1)
	ratFour  = big.NewRat(4, 1)
	ratMu    = big.NewRat(-1, 1)
)

// floorRat returns the greatest integer <= r.
func floorRat(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}

// ceilRat returns the least integer >= r.
func ceilRat(r *big.Rat) *big.Int {
	return new(big.Int).Neg(floorRat(new(big.Rat).Neg(r)))
}

// roundOffRat performs the τ-friendly tie-break round used throughout this
// package: ties at exactly n+1/2 round towards the direction that keeps
// the residual closer to zero on both sides, rather than always up.
func roundOffRat(r *big.Rat) *big.Int {
	if r.Sign() > 0 {
		return ceilRat(new(big.Rat).Sub(r, ratHalf))
	}
	return floorRat(new(big.Rat).Add(r, ratHalf))
}

// RoundOff finds the element of Z[τ] closest to rt in the lattice sense,
// following Algorithm 15.9 of the Handbook of Applied and Hyperelliptic
// Curve Cryptography, specialized to K-233's μ = -1.
func RoundOff(rt RTau) ZTau {
	f0 := roundOffRat(rt.A0)
	f1 := roundOffRat(rt.A1)

	eta0 := new(big.Rat).Sub(rt.A0, new(big.Rat).SetInt(f0))
	eta1 := new(big.Rat).Sub(rt.A1, new(big.Rat).SetInt(f1))

	h0, h1 := big.NewInt(0), big.NewInt(0)

	eta := new(big.Rat).Add(new(big.Rat).Mul(ratTwo, eta0), new(big.Rat).Mul(eta1, ratMu))

	threeMuEta1 := new(big.Rat).Mul(ratThree, new(big.Rat).Mul(ratMu, eta1))
	fourMuEta1 := new(big.Rat).Mul(ratFour, new(big.Rat).Mul(ratMu, eta1))

	if eta.Cmp(ratOne) >= 0 {
		if new(big.Rat).Sub(eta0, threeMuEta1).Cmp(new(big.Rat).Neg(ratOne)) < 0 {
			h1 = new(big.Int).Set(mu)
		} else {
			h0 = big.NewInt(1)
		}
	} else {
		if new(big.Rat).Add(eta0, fourMuEta1).Cmp(ratTwo) >= 0 {
			h1 = new(big.Int).Set(mu)
		}
	}

	if eta.Cmp(new(big.Rat).Neg(ratOne)) < 0 {
		if new(big.Rat).Sub(eta0, threeMuEta1).Cmp(ratOne) >= 0 {
			h1 = new(big.Int).Neg(mu)
		} else {
			h0 = big.NewInt(-1)
		}
	} else {
		if new(big.Rat).Add(eta0, fourMuEta1).Cmp(new(big.Rat).Neg(ratTwo)) < 0 {
			h1 = new(big.Int).Neg(mu)
		}
	}

	q0 := new(big.Int).Add(f0, h0)
	q1 := new(big.Int).Add(f1, h1)
	return ZTau{A0: q0, A1: q1}
}
