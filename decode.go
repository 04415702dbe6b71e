package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode"

	"github.com/go-i2p/go-crockford/lib/common/base32"
	"github.com/go-i2p/go-crockford/lib/common/crockford"
	"github.com/go-i2p/go-crockford/lib/compress"
	"github.com/go-i2p/go-crockford/lib/config"
	"github.com/go-i2p/go-crockford/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode symbols from a file or stdin back to bytes",
		Long: `Decode symbols from a file or stdin back to bytes.

An invalid symbol stops decoding. The bytes decoded before it are still
written, and the error names the symbol's position among the symbols read
along with its character offset in the input, which differ when whitespace
is skipped.

In --block mode carriage returns and line feeds are always ignored, even
with --skip-whitespace=false, and invalid input is rejected before anything
is written.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDecode,
		Annotations: map[string]string{
			"io.block":               "block",
			"compression.zstd":       "zstd",
			"decode.skip_whitespace": "skip-whitespace",
		},
	}
	defaults := config.Defaults()
	cmd.Flags().Bool("block", defaults.IO.Block, "read all input and decode it in one pass")
	cmd.Flags().Bool("zstd", defaults.Compression.Zstd, "zstd decompress the decoded bytes")
	cmd.Flags().Bool("skip-whitespace", defaults.Decode.SkipWhitespace, "ignore spaces and line breaks between symbols; --block always ignores line breaks")
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg := config.CurrentConfig()

	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	var decoded io.Reader
	var skipper *util.SpaceSkipper
	if cfg.IO.Block {
		decoded, err = decodeBlock(in, cfg.Decode.SkipWhitespace)
		if err != nil {
			return err
		}
	} else {
		var symbols io.RuneReader = bufio.NewReaderSize(in, cfg.IO.BufferSize)
		if cfg.Decode.SkipWhitespace {
			skipper = util.SkipSpace(symbols)
			symbols = skipper
		}
		decoded = crockford.NewDecoder(symbols)
	}

	if cfg.Compression.Zstd {
		zr, err := compress.NewReader(decoded)
		if err != nil {
			return err
		}
		defer zr.Close()
		decoded = zr
	}

	out := bufferedOutput(cmd, cfg.IO.BufferSize)
	n, err := io.Copy(out, decoded)
	if err != nil {
		// keep what was decoded before the failure
		out.Flush()
		var decodeErr *crockford.DecodeError
		if errors.As(err, &decodeErr) {
			offset := decodeErr.Pos
			if skipper != nil {
				offset += skipper.Skipped()
			}
			log.WithFields(logger.Fields{
				"at":       "runDecode",
				"char":     string(decodeErr.Char),
				"position": decodeErr.Pos,
				"offset":   offset,
				"written":  n,
			}).Error("invalid symbol in input")
			return oops.Wrapf(err, "decoding at input offset %d", offset)
		}
		return oops.Wrapf(err, "decoding")
	}
	log.WithFields(logger.Fields{
		"at":    "runDecode",
		"bytes": n,
		"block": cfg.IO.Block,
		"zstd":  cfg.Compression.Zstd,
	}).Debug("decoded input")
	return out.Flush()
}

func decodeBlock(in io.Reader, skipWhitespace bool) (io.Reader, error) {
	text, err := io.ReadAll(in)
	if err != nil {
		return nil, oops.Wrapf(err, "reading input")
	}
	if skipWhitespace {
		text = bytes.Join(bytes.FieldsFunc(text, unicode.IsSpace), nil)
	}
	data, err := base32.DecodeString(string(text))
	if err != nil {
		return nil, oops.Wrapf(err, "decoding")
	}
	return bytes.NewReader(data), nil
}
