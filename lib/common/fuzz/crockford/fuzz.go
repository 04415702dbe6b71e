package exportable

import (
	"bytes"

	"github.com/go-i2p/go-crockford/lib/common/base32"
	"github.com/go-i2p/go-crockford/lib/common/crockford"
)

func Fuzz(data []byte) int {
	encoded := crockford.EncodeToString(data)
	if encoded != base32.EncodeToString(data) {
		panic("stream and block encodings differ")
	}
	decoded, err := crockford.DecodeString(encoded)
	if err != nil || !bytes.Equal(decoded, data) {
		panic("round trip failed")
	}
	crockford.DecodeString(string(data))
	crockford.ParseUint[uint64](data)
	if crockford.Valid(string(data)) {
		stream, err := crockford.DecodeString(string(data))
		if err != nil {
			panic(err)
		}
		block, err := base32.DecodeString(string(data))
		if err != nil || !bytes.Equal(stream, block) {
			panic("stream and block decodings differ")
		}
		return 1
	}
	return 0
}
