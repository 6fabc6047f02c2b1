// cmd/sgffp/info.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merv1n34k/sgffp/internal/inspect"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show header fields and a block census",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadContainer(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File: %s\n", args[0])
		fmt.Fprintf(out, "Sequence kind:  %s\n", c.Header.Kind)
		fmt.Fprintf(out, "Export version: %d\n", c.Header.ExportVersion)
		fmt.Fprintf(out, "Import version: %d\n", c.Header.ImportVersion)

		if seq, err := c.Sequence(); err == nil && seq != nil {
			topo := "linear"
			if seq.Circular {
				topo = "circular"
			}
			fmt.Fprintf(out, "Sequence:       %d bp, %s\n", seq.Len(), topo)
		}

		fmt.Fprintf(out, "\nBlocks:\n")
		for _, row := range inspect.Census(c) {
			note := ""
			if !row.Decoded {
				note = "  (not decoded)"
			}
			fmt.Fprintf(out, "  type %2d: %2d block(s), %6d bytes%s\n", row.Type, row.Count, row.Bytes, note)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
