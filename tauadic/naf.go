package tauadic

import (
	"fmt"
	"math/big"
	"sync"
)

var two = big.NewInt(2)
var four = big.NewInt(4)

// TauNAF returns the τ-adic non-adjacent form of z: a digit sequence
// d_0, d_1, ... with d_i in {-1, 0, 1}, no two consecutive nonzero
// digits, such that z = Σ d_i·τ^i. This is Algorithm 15.6 of the
// Handbook of Applied and Hyperelliptic Curve Cryptography.
func (z ZTau) TauNAF() []int8 {
	n0 := new(big.Int).Set(z.A0)
	n1 := new(big.Int).Set(z.A1)
	var digits []int8
	for n0.Sign() != 0 || n1.Sign() != 0 {
		var r int8
		if n0.Bit(0) == 1 {
			t := new(big.Int).Sub(n0, new(big.Int).Mul(two, n1))
			t.Mod(t, four)
			r = int8(2 - t.Int64())
			n0.Sub(n0, big.NewInt(int64(r)))
		}
		digits = append(digits, r)
		newN0 := new(big.Int).Sub(n1, halveEven(n0))
		newN1 := new(big.Int).Neg(halveEven(n0))
		n0, n1 = newN0, newN1
	}
	return digits
}

// hwTable memoizes HW(w) per window size, since every TauNAFw call at a
// given w needs the same isomorphism constant.
var hwTable sync.Map // map[int]*big.Int

func cachedHW(w int) *big.Int {
	if v, ok := hwTable.Load(w); ok {
		return v.(*big.Int)
	}
	v, _ := hwTable.LoadOrStore(w, HW(w))
	return v.(*big.Int)
}

// isomorphism maps z into Z/2^w via τ ↦ h_w: a0 + a1·h_w.
func (z ZTau) isomorphism(hw *big.Int) *big.Int {
	return new(big.Int).Add(z.A0, new(big.Int).Mul(z.A1, hw))
}

// TauNAFw returns the width-w windowed τ-adic NAF of z as a flat digit
// sequence: whenever the running remainder is odd, it emits the unique
// odd digit u in (-2^(w-1), 2^(w-1)] congruent to the remainder modulo
// τ^w (found through the Z[τ]/τ^w ≅ Z/2^w isomorphism), followed by w-1
// zero digits, and divides the remainder by τ^w exactly; otherwise it
// emits a single zero digit and divides by τ. This is the windowed
// generalization of Algorithm 15.6, used the same way ordinary wNAF
// windows an integer NAF. w must be at least 2.
func (z ZTau) TauNAFw(w int) ([]int64, error) {
	if w < 2 {
		return nil, &ArithmeticError{Kind: WindowTooWide, Detail: fmt.Sprintf("w=%d, need w>=2", w)}
	}
	hw := cachedHW(w)
	tauW := TauPow(w)
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(w))
	half := new(big.Int).Rsh(modulus, 1)

	var result []int64
	t := z
	for !t.IsZero() {
		if t.isOdd() {
			u := t.isomorphism(hw)
			u.Mod(u, modulus)
			if u.Cmp(half) > 0 {
				u.Sub(u, modulus)
			}
			result = append(result, u.Int64())
			for i := 0; i < w-1; i++ {
				result = append(result, 0)
			}
			t = t.Sub(ZTau{A0: new(big.Int).Set(u), A1: big.NewInt(0)})
			q, r := t.QuoRem(tauW)
			if !r.IsZero() {
				return nil, &ArithmeticError{Kind: OddRequired, Detail: "window residue not divisible by tau^w"}
			}
			t = q
		} else {
			result = append(result, 0)
			newA0 := new(big.Int).Sub(t.A1, halveEven(t.A0))
			newA1 := new(big.Int).Neg(halveEven(t.A0))
			t = ZTau{A0: newA0, A1: newA1}
		}
	}
	return result, nil
}
