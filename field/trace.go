package field

// Trace computes Tr(a) = a + a^2 + a^4 + ... + a^(2^(M-1)), the field trace
// down to GF(2). Tr(a) is always 0 or 1.
func Trace(a Element) Element {
	result := a
	sq := a
	for i := 1; i < M; i++ {
		sq = sq.Square()
		result = result.Add(sq)
	}
	return result
}
