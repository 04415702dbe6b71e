// Package compress frames the binary side of the crockford command in zstd,
// so large inputs can be shrunk before they are spelled out in symbols.
package compress

import (
	"io"

	"github.com/go-i2p/logger"
	"github.com/klauspost/compress/zstd"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// NewWriter returns a writer that compresses into dst. level runs from 1
// (fastest) to 4 (best compression). Close flushes the final frame; it does
// not close dst.
func NewWriter(dst io.Writer, level int) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.EncoderLevel(level)))
	if err != nil {
		return nil, oops.Wrapf(err, "creating zstd writer at level %d", level)
	}
	log.WithFields(logger.Fields{
		"at":    "NewWriter",
		"level": zstd.EncoderLevel(level).String(),
	}).Debug("zstd writer ready")
	return encoder, nil
}

// NewReader returns a reader that decompresses src.
func NewReader(src io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(src)
	if err != nil {
		return nil, oops.Wrapf(err, "creating zstd reader")
	}
	return decoder.IOReadCloser(), nil
}

// Compress returns data compressed at level.
func Compress(data []byte, level int) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevel(level)))
	if err != nil {
		return nil, oops.Wrapf(err, "creating zstd writer at level %d", level)
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil), nil
}

// Decompress returns data decompressed.
func Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, oops.Wrapf(err, "creating zstd reader")
	}
	defer decoder.Close()
	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, oops.Wrapf(err, "decompressing %d bytes", len(data))
	}
	return out, nil
}
