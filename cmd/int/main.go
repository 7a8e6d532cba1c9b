// Package main provides the CLI entry point for int.
package main

import (
	"errors"
	"fmt"
	"os"

	interrors "github.com/flashingpumpkin/intconv/internal/errors"
)

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(splitNumericArgs(cmd.Flags(), os.Args[1:]))

	if err := cmd.Execute(); err != nil {
		// Conversion failures were already reported inline.
		if !errors.Is(err, interrors.ErrInvalidArgs) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
