package main

import (
	"bufio"
	"io"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// openInput returns the command's input: the named file, or stdin when no
// file or "-" is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, oops.Wrapf(err, "opening input")
	}
	return f, nil
}

// bufferedOutput wraps the command's stdout; callers must Flush.
func bufferedOutput(cmd *cobra.Command, size int) *bufio.Writer {
	return bufio.NewWriterSize(cmd.OutOrStdout(), size)
}
