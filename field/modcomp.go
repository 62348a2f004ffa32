package field

import "math"

// compositionWidth is k = ceil(sqrt(M)), the table size Brent-Kung modular
// composition splits the exponent into.
func compositionWidth() int {
	return int(math.Ceil(math.Sqrt(float64(M))))
}

// modularComposition computes f(g(X)) mod the field's defining trinomial,
// via Handbook of Applied and Hyperelliptic Curve Cryptography Algorithm
// 11.50 (Brent-Kung modular composition). It is the inner step Shoup's
// exponentiation algorithm (Exp) repeatedly invokes with g(X) = X^(2^r).
func modularComposition(f, g Element) Element {
	k := compositionWidth()

	// G[j] = g^j, j = 0..k-1
	gPow := make([]Element, k)
	gPow[0] = One()
	for i := 1; i < k; i++ {
		gPow[i] = g.Mul(gPow[i-1])
	}

	// P[i] = g^(i*k), i = 0..k-1
	gk := g.Mul(gPow[k-1])
	pPow := make([]Element, k)
	pPow[0] = One()
	for i := 1; i < k; i++ {
		pPow[i] = gk.Mul(pPow[i-1])
	}

	// F[i](X) = sum_j f_{i*k+j} * G[j](X)
	fParts := make([]Element, k)
	for i := 0; i < k; i++ {
		fParts[i] = Zero()
		for j := 0; j < k; j++ {
			idx := i*k + j
			if idx >= M {
				continue
			}
			if f.Bit(idx) == 1 {
				fParts[i] = fParts[i].Add(gPow[j])
			}
		}
	}

	r := Zero()
	for i := 0; i < k; i++ {
		r = r.Add(fParts[i].Mul(pPow[i]))
	}
	return r
}
