package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaults verifies that Defaults() returns the documented values.
func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Encode.Wrap != 0 {
		t.Errorf("Encode.Wrap = %d, want 0", cfg.Encode.Wrap)
	}
	if cfg.IO.Block {
		t.Error("IO.Block should be false by default")
	}
	if !cfg.Decode.SkipWhitespace {
		t.Error("Decode.SkipWhitespace should be true by default")
	}
	if cfg.Compression.Zstd {
		t.Error("Compression.Zstd should be false by default")
	}
	if cfg.Compression.Level != 2 {
		t.Errorf("Compression.Level = %d, want 2", cfg.Compression.Level)
	}
	if cfg.Generate.Bytes != 10 {
		t.Errorf("Generate.Bytes = %d, want 10", cfg.Generate.Bytes)
	}
	if cfg.IO.BufferSize != 64*1024 {
		t.Errorf("IO.BufferSize = %d, want 65536", cfg.IO.BufferSize)
	}
}

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, Validate(Defaults()))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ConfigDefaults)
	}{
		{"negative wrap", func(c *ConfigDefaults) { c.Encode.Wrap = -1 }},
		{"level too low", func(c *ConfigDefaults) { c.Compression.Level = 0 }},
		{"level too high", func(c *ConfigDefaults) { c.Compression.Level = 5 }},
		{"no random bytes", func(c *ConfigDefaults) { c.Generate.Bytes = 0 }},
		{"tiny buffer", func(c *ConfigDefaults) { c.IO.BufferSize = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := Validate(cfg)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}
