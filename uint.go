package main

import (
	"fmt"
	"strconv"

	"github.com/go-i2p/go-crockford/lib/common/crockford"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newUintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uint",
		Short: "Convert unsigned 64-bit integers to and from fixed-width symbols",
	}

	encode := &cobra.Command{
		Use:   "encode <value>",
		Short: "Print the symbols for a decimal, 0x hex or 0b binary value",
		Args:  cobra.ExactArgs(1),
		RunE:  runUintEncode,
	}
	encode.Flags().Int("width", 0, "number of symbols, 0 for the shortest form; wider values lose high digits")

	decode := &cobra.Command{
		Use:   "decode <symbols>",
		Short: "Print the decimal value of a symbol string",
		Args:  cobra.ExactArgs(1),
		RunE:  runUintDecode,
	}

	cmd.AddCommand(encode, decode)
	return cmd
}

func runUintEncode(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return oops.Wrapf(err, "parsing value")
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	if width < 0 {
		return oops.Errorf("width must not be negative, got %d", width)
	}

	var buf []byte
	if width == 0 {
		buf = crockford.AppendUint(nil, v)
	} else {
		if need := crockford.UintLen(v); need > width {
			log.WithFields(logger.Fields{
				"at":     "runUintEncode",
				"value":  v,
				"width":  width,
				"needed": need,
			}).Warn("value truncated to width")
		}
		buf = make([]byte, width)
		crockford.PutUint(buf, v)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(buf))
	return err
}

func runUintDecode(cmd *cobra.Command, args []string) error {
	v, err := crockford.ParseUintString[uint64](args[0])
	if err != nil {
		return err
	}
	if !crockford.UintFits[uint64](args[0]) {
		log.WithFields(logger.Fields{
			"at":      "runUintDecode",
			"symbols": args[0],
			"max":     crockford.MaxUintLen[uint64](),
		}).Warn("high digits exceed 64 bits and are dropped")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}
