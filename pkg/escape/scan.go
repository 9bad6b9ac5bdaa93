package escape

const (
	wordSize = 8

	lsb = 0x0101010101010101
	msb = 0x8080808080808080
)

// Broadcast forms of the five escapable bytes.
const (
	ampWord  = lsb * '&'
	ltWord   = lsb * '<'
	gtWord   = lsb * '>'
	quotWord = lsb * '"'
	aposWord = lsb * '\''
)

// indexWide scans s one 8-byte word at a time. A word with no escapable
// byte costs five xor/subtract/and-not rounds and no branches per byte.
// The first flagged word is resolved with the scalar loop, so the result
// never depends on which lanes the word test flagged.
func indexWide(s string) int {
	i := 0
	for ; i+wordSize <= len(s); i += wordSize {
		if special(load64(s, i)) != 0 {
			return i + scalarIndex(s[i:i+wordSize])
		}
	}
	if j := scalarIndex(s[i:]); j >= 0 {
		return i + j
	}
	return -1
}

// special returns a non-zero mask when any byte of x is escapable.
func special(x uint64) uint64 {
	return zeroBytes(x^ampWord) |
		zeroBytes(x^ltWord) |
		zeroBytes(x^gtWord) |
		zeroBytes(x^quotWord) |
		zeroBytes(x^aposWord)
}

// zeroBytes sets the high bit of the lowest zero byte of v (and possibly
// of bytes above it). It is zero iff v has no zero byte.
func zeroBytes(v uint64) uint64 {
	return (v - lsb) &^ v & msb
}

// load64 reads s[i:i+8] as a little-endian word.
func load64(s string, i int) uint64 {
	_ = s[i+7]
	return uint64(s[i]) |
		uint64(s[i+1])<<8 |
		uint64(s[i+2])<<16 |
		uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 |
		uint64(s[i+5])<<40 |
		uint64(s[i+6])<<48 |
		uint64(s[i+7])<<56
}
