package util

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserHomeReturnsValidPath verifies UserHome returns an existing path.
func TestUserHomeReturnsValidPath(t *testing.T) {
	home := UserHome()
	require.NotEmpty(t, home)

	_, err := os.Stat(home)
	assert.NoError(t, err)
}

func TestUserHomeHonoursHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	assert.Equal(t, dir, UserHome())
}

func TestSkipSpace(t *testing.T) {
	r := SkipSpace(strings.NewReader(" Z0 Z0\nZ0\r\n\tZ0 \n"))

	var got []rune
	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, c)
	}
	assert.Equal(t, "Z0Z0Z0Z0", string(got))
	assert.Equal(t, 8, r.Skipped())
}

func TestSkipSpaceCountsSkippedBeforeEachRune(t *testing.T) {
	r := SkipSpace(strings.NewReader("Z0\n  !"))

	for i := 0; i < 2; i++ {
		_, _, err := r.ReadRune()
		require.NoError(t, err)
	}
	assert.Equal(t, 0, r.Skipped())

	c, _, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, '!', c)
	// '!' is the third rune returned, after three skipped: offset 5
	assert.Equal(t, 3, r.Skipped())
}

func TestLineWriter(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		writes []string
		want   string
	}{
		{"no wrap", 0, []string{"ABCDEFG"}, "ABCDEFG"},
		{"exact lines", 3, []string{"ABCDEF"}, "ABC\nDEF\n"},
		{"partial last line", 4, []string{"ABCDEF"}, "ABCD\nEF\n"},
		{"split writes", 3, []string{"A", "BCD", "E", "FG"}, "ABC\nDEF\nG\n"},
		{"empty", 5, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lw := &LineWriter{W: &buf, Width: tt.width}
			for _, w := range tt.writes {
				n, err := lw.Write([]byte(w))
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}
			require.NoError(t, lw.Terminate())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
