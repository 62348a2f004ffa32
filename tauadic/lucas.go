package tauadic

import "math/big"

// LucasSequence generates the U-sequence behind τ's powers and its h_w
// isomorphism constants: U_0=0, U_1=1, U_{n+1} = μ·U_n - char·U_{n-1}
// (equation 15.4 of the Handbook of Applied and Hyperelliptic Curve
// Cryptography).
type LucasSequence struct {
	U0, U1 *big.Int
}

// NewLucasSequence starts the sequence at the given seed pair.
func NewLucasSequence(u0, u1 int64) LucasSequence {
	return LucasSequence{U0: big.NewInt(u0), U1: big.NewInt(u1)}
}

// Next advances the sequence by one step.
func (l LucasSequence) Next() LucasSequence {
	next := new(big.Int).Sub(
		new(big.Int).Mul(mu, l.U1),
		new(big.Int).Mul(char, l.U0),
	)
	return LucasSequence{U0: l.U1, U1: next}
}

// NSteps advances the sequence by n steps.
func (l LucasSequence) NSteps(n int) LucasSequence {
	result := l
	for i := 0; i < n; i++ {
		result = result.Next()
	}
	return result
}

// TauPow returns τ^w as an element of Z[τ], computed from the Lucas
// sequence rather than repeated multiplication: τ^w = U_w·τ - char·U_{w-1}.
func TauPow(w int) ZTau {
	if w == 0 {
		return One()
	}
	if w == 1 {
		return Tau()
	}
	seq := NewLucasSequence(0, 1).NSteps(w - 1)
	a0 := new(big.Int).Neg(new(big.Int).Mul(char, seq.U0))
	return ZTau{A0: a0, A1: new(big.Int).Set(seq.U1)}
}

// HW returns h_w, the image of τ under the isomorphism Z[τ]/τ^w ≅ Z/2^w:
// h_w = 2·U_{w-1}·U_w^{-1} mod 2^w. This lets the windowed τ-NAF digit
// selection work modulo a plain power of two instead of in Z[τ] itself.
func HW(w int) *big.Int {
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(w))
	seq := NewLucasSequence(0, 1).NSteps(w - 1)
	uwInv := new(big.Int).ModInverse(seq.U1, modulus)
	h := new(big.Int).Mul(big.NewInt(2), new(big.Int).Mul(seq.U0, uwInv))
	return h.Mod(h, modulus)
}
