package crockford

import "fmt"

// DecodeError reports a character outside the alphabet and its position in
// the input. For buffers Pos is a byte index; for streams it is the index of
// the symbol among all symbols pulled from the source.
type DecodeError struct {
	Char rune
	Pos  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("crockford: invalid symbol %q at position %d", e.Char, e.Pos)
}
