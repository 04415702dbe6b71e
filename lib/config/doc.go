// Package config provides configuration for the crockford command.
//
// Settings are resolved by viper in this order: command line flags bound by
// the caller, a YAML config file, then the values returned by Defaults().
//
// The config file is looked up as config.yaml in $HOME/.go-crockford unless
// CfgFile names one explicitly. A missing default file is not an error; a
// missing explicit file is.
//
// Keys:
//   - encode.wrap: symbols per output line, 0 disables wrapping
//   - decode.skip_whitespace: ignore spaces and line breaks between symbols
//   - compression.zstd: compress before encoding, decompress after decoding
//   - compression.level: zstd level, 1 (fastest) to 4 (best)
//   - gen.bytes: random bytes per generated identifier
//   - io.buffer_size: bytes buffered on input and output
//   - io.block: use the whole-buffer codec instead of the stream codec
package config
