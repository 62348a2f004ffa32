package tauadic

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// EstimateDigitCount estimates the number of τ-NAF digits z's expansion
// will produce without actually running TauNAF. Each multiplication by τ
// scales magnitude by |τ| = sqrt(2), so a chain of L digits reaches norm
// roughly 2^L; inverting that gives L ≈ log2(N(z)). bigfloat.Log2 is used
// instead of converting through float64 because N(z) routinely exceeds
// float64's exact-integer range once z has been reduced from a 233-bit
// scalar.
func EstimateDigitCount(z ZTau) int {
	n := new(big.Int).Abs(z.Norm())
	if n.Sign() == 0 {
		return 0
	}
	logN := bigfloat.Log2(new(big.Float).SetInt(n))
	val, _ := logN.Float64()
	return int(math.Ceil(val))
}
