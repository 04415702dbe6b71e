package main

import (
	"bufio"
	"io"

	"github.com/go-i2p/go-crockford/lib/common/base32"
	"github.com/go-i2p/go-crockford/lib/common/crockford"
	"github.com/go-i2p/go-crockford/lib/compress"
	"github.com/go-i2p/go-crockford/lib/config"
	"github.com/go-i2p/go-crockford/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode bytes from a file or stdin as symbols",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEncode,
		Annotations: map[string]string{
			"encode.wrap":       "wrap",
			"io.block":          "block",
			"compression.zstd":  "zstd",
			"compression.level": "level",
		},
	}
	defaults := config.Defaults()
	cmd.Flags().Int("wrap", defaults.Encode.Wrap, "symbols per output line, 0 for a single line")
	cmd.Flags().Bool("block", defaults.IO.Block, "read all input and encode it in one pass")
	cmd.Flags().Bool("zstd", defaults.Compression.Zstd, "zstd compress the input before encoding")
	cmd.Flags().Int("level", defaults.Compression.Level, "zstd level, 1 (fastest) to 4 (best)")
	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := config.CurrentConfig()

	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	var src io.Reader = in
	if cfg.Compression.Zstd {
		zr := compressing(in, cfg.Compression.Level)
		defer zr.Close()
		src = zr
	}

	out := bufferedOutput(cmd, cfg.IO.BufferSize)
	lines := &util.LineWriter{W: out, Width: cfg.Encode.Wrap}

	var n int64
	if cfg.IO.Block {
		n, err = encodeBlock(lines, src)
	} else {
		n, err = io.Copy(lines, crockford.NewEncoder(bufio.NewReaderSize(src, cfg.IO.BufferSize)))
	}
	if err != nil {
		return oops.Wrapf(err, "encoding")
	}
	if err := lines.Terminate(); err != nil {
		return err
	}
	log.WithFields(logger.Fields{
		"at":      "runEncode",
		"symbols": n,
		"block":   cfg.IO.Block,
		"zstd":    cfg.Compression.Zstd,
	}).Debug("encoded input")
	return out.Flush()
}

func encodeBlock(w io.Writer, src io.Reader) (int64, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, base32.EncodeToString(data))
	return int64(n), err
}

// compressing returns a reader of the zstd compressed form of src. Closing
// it stops the compressor.
func compressing(src io.Reader, level int) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		zw, err := compress.NewWriter(pw, level)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(zw, src); err != nil {
			zw.Close()
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(zw.Close())
	}()
	return pr
}
