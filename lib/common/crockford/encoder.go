package crockford

import (
	"errors"
	"io"
	"iter"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// encodeStep describes one phase of the 5 byte / 8 symbol cycle.
//
// A fetching step shifts the new byte in under the carry, forming a 16-bit
// window carry<<8|next; a non-fetching step slices the carry alone. The
// symbol is (window >> shift) & 0x1F. Bits of the carry that were already
// emitted sit above the mask, so the carry never needs to be "empty".
type encodeStep struct {
	fetch bool
	shift uint8
}

// Byte boundaries fall inside symbols 1, 3, 4 and 6:
//
//	bytes   |76543210|76543210|76543210|76543210|76543210|
//	symbols |43210 432|10 43210 4|3210 4321|0 43210 43|210 43210|
var encodeSteps = [encodePeriod]encodeStep{
	{fetch: true, shift: 3},
	{fetch: true, shift: 6},
	{fetch: false, shift: 1},
	{fetch: true, shift: 4},
	{fetch: true, shift: 7},
	{fetch: false, shift: 2},
	{fetch: true, shift: 5},
	{fetch: false, shift: 0},
}

const encodePeriod = 8

// Encoder pulls bytes from a source and produces symbols, most significant
// bit first. When the source ends inside a cycle the missing bits are zero
// and the final partial symbol is still emitted, so n bytes always produce
// EncodedLen(n) symbols.
//
// An Encoder is single use and not safe for concurrent use.
type Encoder struct {
	src      io.ByteReader
	phase    int
	carry    byte
	consumed int
	emitted  int64
	err      error
}

// NewEncoder returns an Encoder reading from src.
func NewEncoder(src io.ByteReader) *Encoder {
	return &Encoder{src: src}
}

// Next returns the next symbol. It returns io.EOF once the source is drained
// and every pending bit has been emitted. A source error other than io.EOF is
// returned wrapped; after any error Next keeps returning it.
func (e *Encoder) Next() (byte, error) {
	if e.err != nil {
		return 0, e.err
	}
	step := encodeSteps[e.phase]
	window := uint16(e.carry)
	if step.fetch {
		next, err := e.src.ReadByte()
		if err != nil {
			return e.finish(err)
		}
		e.consumed++
		window = window<<8 | uint16(next)
		e.carry = next
	}
	return e.emit(byte(window >> step.shift)), nil
}

// finish handles a failed fetch. At phase 0 there are no pending bits; at
// any other phase the pending bits are padded with zeros and emitted.
func (e *Encoder) finish(err error) (byte, error) {
	if !errors.Is(err, io.EOF) {
		e.err = oops.Wrapf(err, "crockford: reading byte %d", e.consumed)
		log.WithFields(logger.Fields{
			"at":       "(Encoder) Next",
			"consumed": e.consumed,
			"error":    err.Error(),
		}).Warn("byte source failed")
		return 0, e.err
	}
	e.err = io.EOF
	if e.phase == 0 {
		e.logDone()
		return 0, io.EOF
	}
	step := encodeSteps[e.phase]
	sym := e.emit(byte(uint16(e.carry) << 8 >> step.shift))
	e.logDone()
	return sym, nil
}

func (e *Encoder) emit(v byte) byte {
	e.phase = (e.phase + 1) % encodePeriod
	e.emitted++
	return Symbol(v)
}

func (e *Encoder) logDone() {
	log.WithFields(logger.Fields{
		"at":       "(Encoder) Next",
		"consumed": e.consumed,
		"emitted":  e.emitted,
	}).Debug("byte source exhausted")
}

// ReadByte implements io.ByteReader.
func (e *Encoder) ReadByte() (byte, error) {
	return e.Next()
}

// Read implements io.Reader, filling p with symbols.
func (e *Encoder) Read(p []byte) (int, error) {
	for n := range p {
		sym, err := e.Next()
		if err != nil {
			return n, err
		}
		p[n] = sym
	}
	return len(p), nil
}

// All returns an iterator over the remaining symbols. Iteration ends after
// the source is drained; a source error is yielded once as the final pair.
func (e *Encoder) All() iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			sym, err := e.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(sym, err) || err != nil {
				return
			}
		}
	}
}

// Phase returns the position in the 8 symbol cycle of the next symbol.
func (e *Encoder) Phase() int {
	return e.phase
}

// Consumed returns the number of bytes pulled from the source.
func (e *Encoder) Consumed() int {
	return e.consumed
}
