package crockford

import (
	"math/bits"
	"strings"

	"github.com/go-i2p/logger"
)

// Unsigned is the set of integer types accepted by the fixed-width codec.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// PutUint writes v into every position of buf, most significant digit first.
// Positions above the highest set digit are filled with '0'. If v needs more
// than len(buf) digits the high-order digits are dropped, leaving v mod
// 32^len(buf).
func PutUint[T Unsigned](buf []byte, v T) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = Symbol(byte(v & 0x1F))
		v >>= 5
	}
}

// ParseUint decodes buf, scanning from the rightmost (least significant)
// digit. The first invalid symbol met in that scan is reported with its index
// from the start of buf. Digits weighted beyond the width of T contribute
// nothing, mirroring the truncation in PutUint.
func ParseUint[T Unsigned](buf []byte) (T, error) {
	return parseUint[T](buf)
}

// ParseUintString is ParseUint for text. It works on runes, so a multi-byte
// character is reported whole and positions count characters, not bytes.
func ParseUintString[T Unsigned](s string) (T, error) {
	return parseUint[T]([]rune(s))
}

func parseUint[T Unsigned, C byte | rune](buf []C) (T, error) {
	var v T
	for i := len(buf) - 1; i >= 0; i-- {
		c := rune(buf[i])
		d, ok := Value(c)
		if !ok {
			log.WithFields(logger.Fields{
				"at":       "ParseUint",
				"char":     string(c),
				"position": i,
			}).Debug("invalid symbol")
			return 0, &DecodeError{Char: c, Pos: i}
		}
		// Go defines shifts at or beyond the type width as zero.
		v |= T(d) << (5 * uint(len(buf)-1-i))
	}
	return v, nil
}

// UintLen returns the number of digits needed to represent v, at least 1.
func UintLen[T Unsigned](v T) int {
	n := bits.Len64(uint64(v))
	if n == 0 {
		return 1
	}
	return (n + 4) / 5
}

// AppendUint appends the shortest encoding of v to dst.
func AppendUint[T Unsigned](dst []byte, v T) []byte {
	n := UintLen(v)
	dst = append(dst, make([]byte, n)...)
	PutUint(dst[len(dst)-n:], v)
	return dst
}

// MaxUintLen returns the number of digits needed for the largest value of T.
func MaxUintLen[T Unsigned]() int {
	return UintLen(^T(0))
}

// UintFits reports whether the digits of s carry no set bit above the width
// of T, that is whether ParseUint would decode them without dropping
// anything. Leading '0' digits are ignored. Invalid symbols are not checked.
func UintFits[T Unsigned](s string) bool {
	s = strings.TrimLeft(s, "0")
	maxLen := MaxUintLen[T]()
	switch {
	case len(s) < maxLen:
		return true
	case len(s) > maxLen:
		return false
	}
	top, _ := Value(rune(s[0]))
	// bits left over for the leading digit once the lower digits take 5 each
	topBits := bits.Len64(uint64(^T(0))) - 5*(maxLen-1)
	return int(top) < 1<<topBits
}
