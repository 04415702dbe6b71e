package config

import (
	"github.com/go-i2p/logger"
)

// ConfigDefaults contains all default configuration values for the
// crockford command.
type ConfigDefaults struct {
	Encode      EncodeDefaults
	Decode      DecodeDefaults
	Compression CompressionDefaults
	Generate    GenerateDefaults
	IO          IODefaults
}

// EncodeDefaults contains default values for the encode command
type EncodeDefaults struct {
	// Wrap is the number of symbols per output line
	// Default: 0 (one line, no trailing newline)
	Wrap int
}

// DecodeDefaults contains default values for the decode command
type DecodeDefaults struct {
	// SkipWhitespace drops spaces and line breaks so wrapped output decodes
	// Default: true
	SkipWhitespace bool
}

// CompressionDefaults controls zstd framing of the binary side
type CompressionDefaults struct {
	// Zstd compresses before encoding and decompresses after decoding
	// Default: false
	Zstd bool

	// Level is the zstd encoder level, 1 (fastest) to 4 (best compression)
	// Default: 2
	Level int
}

// GenerateDefaults contains default values for identifier generation
type GenerateDefaults struct {
	// Bytes is the amount of randomness per identifier
	// Default: 10 (16 symbols)
	Bytes int
}

// IODefaults contains buffering and codec selection defaults
type IODefaults struct {
	// BufferSize is the size of the input and output buffers in bytes
	// Default: 64 KiB
	BufferSize int

	// Block selects the whole-buffer codec, which reads all input first
	// Default: false (stream)
	Block bool
}

// Defaults returns the default configuration.
func Defaults() ConfigDefaults {
	return ConfigDefaults{
		Encode: EncodeDefaults{
			Wrap: 0,
		},
		Decode: DecodeDefaults{
			SkipWhitespace: true,
		},
		Compression: CompressionDefaults{
			Zstd:  false,
			Level: 2,
		},
		Generate: GenerateDefaults{
			Bytes: 10,
		},
		IO: IODefaults{
			BufferSize: 64 * 1024,
			Block:      false,
		},
	}
}

// Validate checks cfg and returns the first problem found.
func Validate(cfg ConfigDefaults) error {
	validators := []func() error{
		func() error { return validateEncode(cfg.Encode) },
		func() error { return validateCompression(cfg.Compression) },
		func() error { return validateGenerate(cfg.Generate) },
		func() error { return validateIO(cfg.IO) },
	}

	for _, validator := range validators {
		if err := validator(); err != nil {
			log.WithError(err).Error("Configuration validation failed")
			return err
		}
	}
	log.WithFields(logger.Fields{
		"at":     "Validate",
		"reason": "all_validators_passed",
	}).Debug("configuration validated")
	return nil
}

func validateEncode(encode EncodeDefaults) error {
	if encode.Wrap < 0 {
		log.WithField("wrap", encode.Wrap).Error("Invalid encode configuration")
		return newValidationError("Encode.Wrap must not be negative")
	}
	return nil
}

func validateCompression(compression CompressionDefaults) error {
	if compression.Level < 1 || compression.Level > 4 {
		log.WithField("level", compression.Level).Error("Invalid compression configuration")
		return newValidationError("Compression.Level must be between 1 and 4")
	}
	return nil
}

func validateGenerate(generate GenerateDefaults) error {
	if generate.Bytes < 1 {
		log.WithField("bytes", generate.Bytes).Error("Invalid gen configuration")
		return newValidationError("Generate.Bytes must be at least 1")
	}
	return nil
}

func validateIO(io IODefaults) error {
	if io.BufferSize < 16 {
		log.WithField("buffer_size", io.BufferSize).Error("Invalid io configuration")
		return newValidationError("IO.BufferSize must be at least 16")
	}
	return nil
}

type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
