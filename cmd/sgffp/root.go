// cmd/sgffp/root.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merv1n34k/sgffp/core/sgff"
)

var rootCmd = &cobra.Command{
	Use:           "sgffp",
	Short:         "Read, inspect and rewrite SnapGene files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagWorkers  int
	flagMaxDepth int
	flagQuiet    bool
)

func init() {
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 1, "parallel block-decode workers (1 = sequential)")
	rootCmd.PersistentFlags().IntVar(&flagMaxDepth, "max-depth", sgff.DefaultMaxDepth, "nested container recursion limit")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress advisory warnings")
}

// warnf prints an advisory line on stderr unless --quiet is set.
func warnf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Execute runs the root command and maps errors to exit codes.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadContainer reads and parses one file with the shared flags,
// warning about block types the engine retained undecoded.
func loadContainer(path string) (*sgff.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := sgff.Parse(data, sgff.WithWorkers(flagWorkers), sgff.WithMaxDepth(flagMaxDepth))
	if err != nil {
		return nil, err
	}
	for _, b := range c.Blocks() {
		if !b.Decoded() {
			warnf("block type %d (%d bytes) not decoded, kept as raw bytes", b.Type, len(b.Raw))
		}
	}
	return c, nil
}
