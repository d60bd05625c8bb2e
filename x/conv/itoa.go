package conv

// Itoa writes the base-10 form of n at the end of buf and returns the used
// slice. A leading '-' is added for negatives when buf has room.
// No allocations; no fmt/strconv dependency.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	d := Utoa(buf, uint64(-n))
	i := len(buf) - len(d)
	if i == 0 {
		return d
	}
	buf[i-1] = '-'
	return buf[i-1:]
}
