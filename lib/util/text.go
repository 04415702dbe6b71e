package util

import (
	"io"
	"unicode"
)

// SkipSpace wraps r so that whitespace runes are never returned. Wrapped
// or space-grouped symbol text can then be fed straight to a decoder.
func SkipSpace(r io.RuneReader) *SpaceSkipper {
	return &SpaceSkipper{r: r}
}

// SpaceSkipper is the io.RuneReader returned by SkipSpace.
type SpaceSkipper struct {
	r       io.RuneReader
	skipped int
}

func (s *SpaceSkipper) ReadRune() (rune, int, error) {
	for {
		c, n, err := s.r.ReadRune()
		if err != nil || !unicode.IsSpace(c) {
			return c, n, err
		}
		s.skipped++
	}
}

// Skipped returns the number of whitespace runes dropped so far. Added to the
// count of runes returned, it gives the offset into the underlying input.
func (s *SpaceSkipper) Skipped() int {
	return s.skipped
}

// LineWriter breaks the bytes written through it into lines of Width bytes.
// A Width of zero or less passes writes through unchanged.
type LineWriter struct {
	W     io.Writer
	Width int
	col   int
}

// Write implements io.Writer. The returned count excludes inserted newlines.
func (lw *LineWriter) Write(p []byte) (int, error) {
	if lw.Width <= 0 {
		return lw.W.Write(p)
	}
	written := 0
	for len(p) > 0 {
		if lw.col == lw.Width {
			if _, err := lw.W.Write([]byte{'\n'}); err != nil {
				return written, err
			}
			lw.col = 0
		}
		chunk := min(lw.Width-lw.col, len(p))
		n, err := lw.W.Write(p[:chunk])
		written += n
		lw.col += n
		if err != nil {
			return written, err
		}
		p = p[chunk:]
	}
	return written, nil
}

// Terminate ends the last line with a newline if anything was written.
func (lw *LineWriter) Terminate() error {
	if lw.col == 0 {
		return nil
	}
	lw.col = 0
	_, err := lw.W.Write([]byte{'\n'})
	return err
}
