package conv

// Utoa writes the base-10 form of n at the end of buf and returns the used
// slice. Digits that do not fit are dropped from the front; size buf at 20
// bytes for any uint64.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf
	}
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 || i == 0 {
			break
		}
	}
	return buf[i:]
}
