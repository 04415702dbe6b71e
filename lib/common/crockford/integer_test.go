package crockford

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutUintIntoSubslice(t *testing.T) {
	assert := assert.New(t)

	buf := []byte("?????")
	PutUint(buf[1:], uint32(1000))

	assert.Equal("?00Z8", string(buf))
}

func TestParseUint(t *testing.T) {
	v, err := ParseUint[uint32]([]byte("0Z8"))
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), v)
}

func TestParseUintInvalidCharacter(t *testing.T) {
	_, err := ParseUint[uint32]([]byte("0?Z8"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, &DecodeError{Char: '?', Pos: 1}, decodeErr)
}

func TestParseUintReportsRightmostInvalid(t *testing.T) {
	_, err := ParseUint[uint64]([]byte("U0?1"))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, '?', decodeErr.Char)
	assert.Equal(t, 2, decodeErr.Pos)
}

func TestParseUintRejectsLowercase(t *testing.T) {
	_, err := ParseUint[uint64]([]byte("z"))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 'z', decodeErr.Char)
	assert.Equal(t, 0, decodeErr.Pos)
}

func TestParseUintEmptyIsZero(t *testing.T) {
	v, err := ParseUint[uint16](nil)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestPutUintTruncatesHighDigits(t *testing.T) {
	assert := assert.New(t)

	// 1000 is "Z8"; one digit keeps only the low five bits.
	buf := make([]byte, 1)
	PutUint(buf, uint32(1000))
	assert.Equal("8", string(buf))

	v, err := ParseUint[uint32](buf)
	assert.NoError(err)
	assert.Equal(uint32(1000%32), v)
}

func TestParseUintDropsDigitsBeyondWidth(t *testing.T) {
	// Two digits carry 10 bits; a uint8 keeps the low 8.
	v, err := ParseUint[uint8]([]byte("ZZ"))
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), v)
}

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 31, 32, 1000, 1 << 20, 0xDEADBEEF,
		math.MaxUint32, math.MaxUint64 >> 1, math.MaxUint64,
	}
	for _, v := range values {
		for width := UintLen(v); width <= 16; width++ {
			buf := make([]byte, width)
			PutUint(buf, v)
			got, err := ParseUint[uint64](buf)
			require.NoError(t, err)
			assert.Equal(t, v, got, "value %d width %d", v, width)
		}
	}
}

func TestUintLen(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want int
	}{
		{"zero", 0, 1},
		{"one digit max", 31, 1},
		{"two digits min", 32, 2},
		{"thousand", 1000, 2},
		{"uint64 max", math.MaxUint64, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UintLen(tt.v))
		})
	}
}

func TestMaxUintLen(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, MaxUintLen[uint8]())
	assert.Equal(4, MaxUintLen[uint16]())
	assert.Equal(7, MaxUintLen[uint32]())
	assert.Equal(13, MaxUintLen[uint64]())
}

func TestAppendUint(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("id-Z8", string(AppendUint([]byte("id-"), uint16(1000))))
	assert.Equal("0", string(AppendUint(nil, uint8(0))))
	assert.Equal("FZZZZZZZZZZZZ", string(AppendUint(nil, uint64(math.MaxUint64))))
}

func TestParseUintStringReportsWholeCharacter(t *testing.T) {
	_, err := ParseUintString[uint64]("0é")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, &DecodeError{Char: 'é', Pos: 1}, decodeErr)

	_, err = ParseUintString[uint64]("é?0")
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, &DecodeError{Char: '?', Pos: 1}, decodeErr)
}

func TestParseUintStringMatchesParseUint(t *testing.T) {
	for _, s := range []string{"", "0", "Z8", "0Z8", "FZZZZZZZZZZZZ"} {
		want, err := ParseUint[uint64]([]byte(s))
		require.NoError(t, err)
		got, err := ParseUintString[uint64](s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "symbols %q", s)
	}
}

func TestUintFits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		fits bool
	}{
		{"empty", "", true},
		{"short", "Z8", true},
		{"uint64 max", "FZZZZZZZZZZZZ", true},
		{"leading zeros", "000FZZZZZZZZZZZZ", true},
		{"top digit too large", "G0000000000000", false},
		{"thirteen digits top bit over", "G000000000000", false},
		{"thirteen digits all ones", "ZZZZZZZZZZZZZ", false},
		{"fourteen digits", "10000000000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, UintFits[uint64](tt.in))
		})
	}

	assert.True(t, UintFits[uint8]("7Z"))
	assert.False(t, UintFits[uint8]("8Z"))
}
