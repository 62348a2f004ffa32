package word

import "testing"

func TestSquareMatchesBitInterleave(t *testing.T) {
	cases := []uint32{0, 1, 0xff, 0xabcd1234, 0xffffffff}
	for _, w := range cases {
		hi, lo := Square(w)
		var want uint64
		for i := 0; i < 32; i++ {
			if w&(1<<uint(i)) != 0 {
				want |= 1 << uint(2*i)
			}
		}
		got := uint64(hi)<<32 | uint64(lo)
		if got != want {
			t.Fatalf("Square(%#x) = %#x, want %#x", w, got, want)
		}
	}
}
