// Package base32 implements whole-buffer encoding and decoding with the
// Crockford alphabet on top of encoding/base32.
package base32

import (
	b32 "encoding/base32"
	"strings"

	"github.com/go-i2p/go-crockford/lib/common/crockford"
)

// CrockfordEncoding is the unpadded block codec for the Crockford alphabet.
// It packs bits exactly like crockford.Encoder and crockford.Decoder.
var CrockfordEncoding *b32.Encoding = b32.NewEncoding(crockford.Alphabet).WithPadding(b32.NoPadding)

// EncodeToString encodes []byte to a base32 string using CrockfordEncoding
func EncodeToString(data []byte) string {
	return CrockfordEncoding.EncodeToString(data)
}

// DecodeString decodes a base32 string to []byte using CrockfordEncoding.
// Carriage returns and line feeds are ignored. A final group of 1, 3 or 6
// symbols, which no encoder produces, decodes like crockford.DecodeString
// does: the last symbol holds no whole byte and is dropped.
func DecodeString(data string) ([]byte, error) {
	if strings.ContainsAny(data, "\r\n") {
		data = strings.NewReplacer("\r", "", "\n", "").Replace(data)
	}
	switch len(data) % 8 {
	case 1, 3, 6:
		// an invalid last symbol is left for the decoder to report
		if last := data[len(data)-1:]; crockford.Valid(last) {
			data = data[:len(data)-1]
		}
	}
	return CrockfordEncoding.DecodeString(data)
}
