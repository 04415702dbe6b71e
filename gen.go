package main

import (
	"fmt"

	"github.com/go-i2p/crypto/rand"
	"github.com/go-i2p/go-crockford/lib/common/crockford"
	"github.com/go-i2p/go-crockford/lib/config"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print random identifiers spelled in symbols",
		Args:  cobra.NoArgs,
		RunE:  runGen,
		Annotations: map[string]string{
			"gen.bytes": "bytes",
		},
	}
	cmd.Flags().Int("bytes", config.Defaults().Generate.Bytes, "random bytes per identifier")
	cmd.Flags().Int("count", 1, "number of identifiers")
	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg := config.CurrentConfig()
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count < 1 {
		return oops.Errorf("count must be at least 1, got %d", count)
	}

	buf := make([]byte, cfg.Generate.Bytes)
	for i := 0; i < count; i++ {
		if _, err := rand.Read(buf); err != nil {
			return oops.Wrapf(err, "reading random bytes")
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), crockford.EncodeToString(buf)); err != nil {
			return err
		}
	}
	return nil
}
