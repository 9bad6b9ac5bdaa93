package escape

import (
	"math/bits"
	"strings"
)

// entities maps each escapable byte to its replacement.
var entities = [256]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

// wide selects the word-at-a-time scan. It only pays off when a uint64
// fits a register.
var wide = bits.UintSize == 64

// String returns s with the five HTML-significant bytes replaced by
// entities. If s needs no escaping it is returned as is.
func String(s string) string {
	i := Index(s)
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/5 + 8)
	for i >= 0 {
		b.WriteString(s[:i])
		b.WriteString(entities[s[i]])
		s = s[i+1:]
		i = Index(s)
	}
	b.WriteString(s)
	return b.String()
}

// AppendString appends the escaped form of s to dst and returns the
// extended buffer. Clean runs are copied in bulk.
func AppendString(dst []byte, s string) []byte {
	i := Index(s)
	if i < 0 {
		return append(dst, s...)
	}

	if need := len(dst) + len(s) + len(s)/5; need > cap(dst) {
		grown := make([]byte, len(dst), need)
		copy(grown, dst)
		dst = grown
	}
	for i >= 0 {
		dst = append(dst, s[:i]...)
		dst = append(dst, entities[s[i]]...)
		s = s[i+1:]
		i = Index(s)
	}
	return append(dst, s...)
}

// Needed reports whether s contains any byte that String would rewrite.
func Needed(s string) bool {
	return Index(s) >= 0
}

// Index returns the offset of the first escapable byte in s, or -1.
func Index(s string) int {
	if wide {
		return indexWide(s)
	}
	return scalarIndex(s)
}

// scalarIndex is the byte-at-a-time scan. It is the reference the wide
// scan is tested against.
func scalarIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if entities[s[i]] != "" {
			return i
		}
	}
	return -1
}
