// cmd/sgffp/version.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merv1n34k/sgffp/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sgffp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sgffp version %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
