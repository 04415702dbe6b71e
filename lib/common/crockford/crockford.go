// Package crockford implements Crockford's base32 encoding: digits and
// uppercase letters without I, L, O and U, five bits per symbol, most
// significant bit first, no padding and no check symbol.
//
// Streams are converted by Encoder and Decoder, which pull one unit at a
// time from a caller supplied source. Unsigned integers are converted to and
// from fixed-width symbol buffers by PutUint and ParseUint.
//
// A trailing partial cycle is zero padded by the encoder: n bytes encode to
// EncodedLen(n) symbols and the final symbol carries zero bits past the end
// of the input. The decoder drops those padding bits, so m symbols decode to
// DecodedLen(m) bytes and every byte slice round trips.
//
// Input is matched exact-case. Callers that accept lowercase or the
// ambiguous letters must normalize before decoding.
package crockford

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// EncodedLen returns the number of symbols produced for n bytes.
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// DecodedLen returns the number of bytes produced for n symbols.
func DecodedLen(n int) int {
	return n * 5 / 8
}

// AppendEncode appends the encoding of src to dst.
func AppendEncode(dst, src []byte) []byte {
	enc := NewEncoder(bytes.NewReader(src))
	for {
		sym, err := enc.Next()
		if err != nil {
			// a bytes.Reader only fails with io.EOF
			return dst
		}
		dst = append(dst, sym)
	}
}

// EncodeToString returns the encoding of src.
func EncodeToString(src []byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

// AppendDecode appends the decoding of src to dst. On a *DecodeError the
// bytes decoded before the failing cycle are returned along with it.
func AppendDecode(dst, src []byte) ([]byte, error) {
	return appendDecode(dst, NewDecoder(bytes.NewReader(src)))
}

// DecodeString returns the bytes represented by s.
func DecodeString(s string) ([]byte, error) {
	return appendDecode(make([]byte, 0, DecodedLen(len(s))), NewDecoder(strings.NewReader(s)))
}

func appendDecode(dst []byte, dec *Decoder) ([]byte, error) {
	for {
		b, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
		dst = append(dst, b)
	}
}
