package crockford

import (
	"errors"
	"io"
	"iter"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// decodeStep describes one phase of the 8 symbol / 5 byte cycle. Each fetch
// shifts a 5-bit value in under the window, which starts as the carry (the
// last value fetched by the previous step). The byte is window >> shift.
type decodeStep struct {
	fetches uint8
	shift   uint8
}

//	symbols |43210 432|10 43210 4|3210 4321|0 43210 43|210 43210|
//	bytes   |76543210|76543210|76543210|76543210|76543210|
var decodeSteps = [decodePeriod]decodeStep{
	{fetches: 2, shift: 2},
	{fetches: 2, shift: 4},
	{fetches: 1, shift: 1},
	{fetches: 2, shift: 3},
	{fetches: 1, shift: 0},
}

const decodePeriod = 5

// Decoder pulls symbols from a source and produces bytes. A byte is emitted
// only when all eight of its bits came from input symbols; the leftover bits
// of a trailing partial cycle are the encoder's zero padding and are
// dropped, so m symbols produce DecodedLen(m) bytes.
//
// A character outside the alphabet makes the step that reads it return a
// *DecodeError. Errors are sticky. A Decoder is single use and not safe for
// concurrent use.
type Decoder struct {
	src      io.RuneReader
	phase    int
	carry    byte
	consumed int
	emitted  int64
	err      error
}

// NewDecoder returns a Decoder reading symbols from src.
func NewDecoder(src io.RuneReader) *Decoder {
	return &Decoder{src: src}
}

// Next returns the next byte, io.EOF once the symbols are exhausted, or the
// error that stopped the decoder.
func (d *Decoder) Next() (byte, error) {
	if d.err != nil {
		return 0, d.err
	}
	step := decodeSteps[d.phase]
	window := uint16(d.carry)
	for i := uint8(0); i < step.fetches; i++ {
		v, err := d.fetch()
		if err != nil {
			d.err = err
			return 0, err
		}
		window = window<<5 | uint16(v)
		d.carry = v
	}
	d.phase = (d.phase + 1) % decodePeriod
	d.emitted++
	return byte(window >> step.shift), nil
}

func (d *Decoder) fetch() (byte, error) {
	c, _, err := d.src.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.WithFields(logger.Fields{
				"at":       "(Decoder) Next",
				"consumed": d.consumed,
				"emitted":  d.emitted,
			}).Debug("symbol source exhausted")
			return 0, io.EOF
		}
		log.WithFields(logger.Fields{
			"at":       "(Decoder) Next",
			"consumed": d.consumed,
			"error":    err.Error(),
		}).Warn("symbol source failed")
		return 0, oops.Wrapf(err, "crockford: reading symbol %d", d.consumed)
	}
	v, ok := Value(c)
	if !ok {
		log.WithFields(logger.Fields{
			"at":       "(Decoder) Next",
			"char":     string(c),
			"position": d.consumed,
		}).Debug("invalid symbol")
		return 0, &DecodeError{Char: c, Pos: d.consumed}
	}
	d.consumed++
	return v, nil
}

// ReadByte implements io.ByteReader.
func (d *Decoder) ReadByte() (byte, error) {
	return d.Next()
}

// Read implements io.Reader.
func (d *Decoder) Read(p []byte) (int, error) {
	for n := range p {
		b, err := d.Next()
		if err != nil {
			return n, err
		}
		p[n] = b
	}
	return len(p), nil
}

// All returns an iterator over the remaining bytes. A decode or source error
// is yielded once as the final pair.
func (d *Decoder) All() iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			b, err := d.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(b, err) || err != nil {
				return
			}
		}
	}
}

// Phase returns the position in the 5 byte cycle of the next byte.
func (d *Decoder) Phase() int {
	return d.phase
}

// Consumed returns the number of valid symbols pulled from the source.
func (d *Decoder) Consumed() int {
	return d.consumed
}
