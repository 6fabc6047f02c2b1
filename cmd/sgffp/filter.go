// cmd/sgffp/filter.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var filterKeep string

var filterCmd = &cobra.Command{
	Use:   "filter <in> <out>",
	Short: "Rewrite a file keeping only the listed block types",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if filterKeep == "" {
			return fmt.Errorf("--keep is required")
		}
		var types []byte
		for _, part := range strings.Split(filterKeep, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || v < 0 || v > 255 {
				return fmt.Errorf("bad block type %q in --keep", part)
			}
			types = append(types, byte(v))
		}

		c, err := loadContainer(args[0])
		if err != nil {
			return err
		}
		c.Retain(types...)
		data, err := c.Serialize()
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes, %d blocks)\n", args[1], len(data), len(c.Blocks()))
		return nil
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterKeep, "keep", "", "comma-separated block type ids to keep")
	rootCmd.AddCommand(filterCmd)
}
