package conv

const hexDigits = "0123456789ABCDEF"

// U8Hex writes n as two uppercase hex digits at the end of buf, no 0x
// prefix. Used for bumper bytes. Returns an empty slice if buf is short.
func U8Hex(buf []byte, n uint8) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	i := len(buf) - 2
	buf[i] = hexDigits[n>>4]
	buf[i+1] = hexDigits[n&0xF]
	return buf[i:]
}
