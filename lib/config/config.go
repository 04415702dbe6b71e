package config

import (
	"path/filepath"

	"github.com/go-i2p/go-crockford/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const CROCKFORD_BASE_DIR = ".go-crockford"

// InitConfig loads defaults and the config file into viper.
func InitConfig() error {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildConfigDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	return handleConfigFile()
}

func setDefaults() {
	defaults := Defaults()

	viper.SetDefault("encode.wrap", defaults.Encode.Wrap)

	viper.SetDefault("decode.skip_whitespace", defaults.Decode.SkipWhitespace)

	viper.SetDefault("compression.zstd", defaults.Compression.Zstd)
	viper.SetDefault("compression.level", defaults.Compression.Level)

	viper.SetDefault("gen.bytes", defaults.Generate.Bytes)

	viper.SetDefault("io.buffer_size", defaults.IO.BufferSize)
	viper.SetDefault("io.block", defaults.IO.Block)
}

// CurrentConfig reads the effective configuration from viper.
func CurrentConfig() ConfigDefaults {
	return ConfigDefaults{
		Encode: EncodeDefaults{
			Wrap: viper.GetInt("encode.wrap"),
		},
		Decode: DecodeDefaults{
			SkipWhitespace: viper.GetBool("decode.skip_whitespace"),
		},
		Compression: CompressionDefaults{
			Zstd:  viper.GetBool("compression.zstd"),
			Level: viper.GetInt("compression.level"),
		},
		Generate: GenerateDefaults{
			Bytes: viper.GetInt("gen.bytes"),
		},
		IO: IODefaults{
			BufferSize: viper.GetInt("io.buffer_size"),
			Block:      viper.GetBool("io.block"),
		},
	}
}

func handleConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && CfgFile == "" {
			log.Debug("no config file found, using defaults")
			return nil
		}
		return oops.Wrapf(err, "reading config file")
	}
	log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	return nil
}

func BuildConfigDirPath() string {
	return filepath.Join(util.UserHome(), CROCKFORD_BASE_DIR)
}
