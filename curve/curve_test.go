package curve

import (
	"math/big"
	"strings"
	"testing"

	"github.com/PayneJoe/koblitz-curves/field"
	"github.com/stretchr/testify/require"
)

func elementFromHex(t *testing.T, s string) field.Element {
	t.Helper()
	n := new(big.Int)
	_, ok := n.SetString(strings.TrimPrefix(s, "0x"), 16)
	require.True(t, ok, "invalid hex literal: %s", s)
	e, err := field.FromBytes(n.Bytes())
	require.NoError(t, err)
	return e
}

func pointFromHex(t *testing.T, x, y, z string) Point {
	t.Helper()
	return Point{X: elementFromHex(t, x), Y: elementFromHex(t, y), Z: elementFromHex(t, z)}
}

const (
	uX = "0x000000fb7946012d6ac80c95db7b19b14ac3afc74628b0eb7743acaa66da26ca"
	uY = "0x000000d3e220f014c2033d071f054dfb8fbed70494eab7055dc832e7293b2a8b"
	uZ = "0x0000000000000000000000000000000000000000000000000000000000000001"

	vX = "0x000000a27e23fca9a5c8c45f266277022015dc908bdc4796b9dc03b531949b9c"
	vY = "0x000000678d8d5bd28b8766a778d26db4cd501a95feabce1af002e3979d88a3df"
	vZ = uZ

	sumX = "0x0000018dd170c7fc91443bee679cc20b0ca53342abc20fb184fe8b6a25701fa5"
	sumY = "0x000000917e9e565076614ee7255f38650c3410cade1cad62c22a367700212d4b"
	sumZ = uZ
)

func TestGeneratorIsOnCurve(t *testing.T) {
	require.True(t, Generator.IsOnCurve())
}

func TestIdentityIsOnCurve(t *testing.T) {
	require.True(t, Identity.IsOnCurve())
}

func TestAdd(t *testing.T) {
	u := pointFromHex(t, uX, uY, uZ)
	v := pointFromHex(t, vX, vY, vZ)
	want := pointFromHex(t, sumX, sumY, sumZ)
	require.Equal(t, want, Add(u, v))
}

func TestDouble(t *testing.T) {
	u := pointFromHex(t, uX, uY, uZ)
	want := pointFromHex(t, vX, vY, vZ)
	require.Equal(t, want, Double(u))
}

func TestFastScalarMul(t *testing.T) {
	u := pointFromHex(t, uX, uY, uZ)
	cases := []struct {
		k          string
		wx, wy, wz string
	}{
		{"0x0000000000000000000000000000000000000000000000000000000000000003",
			sumX, sumY, sumZ},
		{"0x0000000000000000000000000000000000000000000000000000000000000064",
			"0x0000009e1bf51cc7587404389afdfb96ffaa7c770ca4efe5cbcd7f74dc3e80cb",
			"0x000000688b323a0497b654e11ecdbb22ecd20642ef7f928821d8c9ca21dbaf32",
			uZ},
		{"0x0000017c14c59e6253fa1903f05141fd556d02d1aec2c77b038098981ecf8166",
			"0x000001b28c591e7773e37179530ffa59fb2c531c39bd4f1715596cdbd1892568",
			"0x0000005f46e4100332eea099da75d3435cd77ba6be13c06f559cef4ba0d06fa9",
			uZ},
	}
	for _, c := range cases {
		k := elementFromHex(t, c.k)
		want := pointFromHex(t, c.wx, c.wy, c.wz)
		got := FastScalarMul(u, k)
		require.True(t, got.ProjectivelyEqual(want), "FastScalarMul(%s) mismatch", c.k)
	}
}

func TestScalarMulMatchesFastScalarMul(t *testing.T) {
	for _, kHex := range []string{
		"0x0000000000000000000000000000000000000000000000000000000000000003",
		"0x0000000000000000000000000000000000000000000000000000000000000064",
	} {
		k := elementFromHex(t, kHex)
		generic := ScalarMul(Generator, k)
		fast := FastScalarMul(Generator, k)
		require.True(t, generic.ProjectivelyEqual(fast),
			"ScalarMul and FastScalarMul disagree for k=%s", kHex)
	}
}

func TestNegIsInvolution(t *testing.T) {
	require.Equal(t, Generator, Generator.Neg().Neg())
}

func TestAddIdentityIsNoop(t *testing.T) {
	require.Equal(t, Generator, Add(Generator, Identity))
	require.Equal(t, Generator, Add(Identity, Generator))
}
