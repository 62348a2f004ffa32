package tauadic

import (
	"math/big"
	"sync"
)

// fieldDegree is the extension degree of the binary field the curve this
// package serves is defined over (GF(2^233) for K-233).
const fieldDegree = 233

var (
	deltaOnce  sync.Once
	deltaValue ZTau
)

// Delta returns δ = (τ^233 - 1)/(τ - 1) = Σ_{i=0}^{232} τ^i, the element
// of Z[τ] a scalar is reduced modulo before it is expanded into τ-adic
// digits: reducing mod δ keeps the expansion to roughly fieldDegree
// digits instead of growing without bound.
func Delta() ZTau {
	deltaOnce.Do(func() {
		tauN := TauPow(fieldDegree)
		num := tauN.Sub(One())
		den := Tau().Sub(One())
		q, _ := num.QuoRem(den)
		deltaValue = q
	})
	return deltaValue
}

// ReduceModDelta reduces an ordinary integer scalar k into Z[τ] modulo δ,
// returning the small-coefficient representative QuoRem produces. This is
// the step that turns a 233-bit scalar into a pair of roughly
// half-width τ-adic coordinates before TauNAF or TauNAFw runs over them.
func ReduceModDelta(k *big.Int) ZTau {
	scalar := ZTau{A0: new(big.Int).Set(k), A1: big.NewInt(0)}
	return scalar.Reduce(Delta())
}
