package codec

// FormatU32 writes the decimal representation of v into out, returning the
// number of bytes written, or false if out is too small. Avoids strconv's
// allocation on the hot build path.
func FormatU32(v uint32, out []byte) (int, bool) {
	return formatU64(uint64(v), out)
}

// FormatU64 writes the decimal representation of v into out, returning the
// number of bytes written, or false if out is too small.
func FormatU64(v uint64, out []byte) (int, bool) {
	return formatU64(v, out)
}

func formatU64(v uint64, out []byte) (int, bool) {
	if v == 0 {
		if len(out) < 1 {
			return 0, false
		}
		out[0] = '0'
		return 1, true
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	n := len(buf) - i
	if n > len(out) {
		return 0, false
	}
	copy(out, buf[i:])
	return n, true
}
