// cmd/sgffp/parse.go
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/merv1n34k/sgffp/internal/export"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Decode a file to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadContainer(args[0])
		if err != nil {
			return err
		}
		doc := export.FromContainer(c)

		out := cmd.OutOrStdout()
		if parseOutput != "" {
			fh, err := os.Create(parseOutput)
			if err != nil {
				return err
			}
			defer func() { _ = fh.Close() }()
			out = fh
		}
		if err := export.Write(out, doc); err != nil {
			if export.IsBrokenPipe(err) {
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "write JSON to a file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}
