package main

import (
	"os"

	"github.com/go-i2p/go-crockford/lib/config"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetGoI2PLogger()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crockford",
		Short: "Convert between bytes and Crockford base32 text",
		Long: "crockford spells binary data in the Crockford base32 alphabet " +
			"(0-9 and A-Z without I, L, O, U) and reads it back.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd); err != nil {
				return err
			}
			if err := config.InitConfig(); err != nil {
				return err
			}
			return config.Validate(config.CurrentConfig())
		},
	}
	root.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.go-crockford/config.yaml)")
	root.PersistentFlags().Int("buffer-size", config.Defaults().IO.BufferSize, "input and output buffer size in bytes")
	root.Annotations = map[string]string{"io.buffer_size": "buffer-size"}

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newUintCmd(), newGenCmd())
	return root
}

// bindFlags binds the running command's flags to the viper keys listed in
// its annotations and those of its parents (viper key -> flag name).
// Binding happens per run because several commands share a key.
func bindFlags(cmd *cobra.Command) error {
	for c := cmd; c != nil; c = c.Parent() {
		for key, name := range c.Annotations {
			if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Debug("command failed")
		os.Exit(1)
	}
}
