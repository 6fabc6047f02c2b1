// cmd/sgffp/check.go
package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merv1n34k/sgffp/internal/inspect"
)

var (
	checkStrict  bool
	checkExamine bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report block types that are known but not yet decoded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadContainer(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		rows := inspect.Census(c)
		for _, row := range rows {
			marker := ""
			if row.New {
				marker = " [NEW]"
			}
			fmt.Fprintf(out, "%2d: %2d%s\n", row.Type, row.Count, marker)
		}
		found := inspect.NewFound(rows)
		if checkExamine {
			for _, t := range found {
				for i, b := range c.ByType(byte(t)) {
					fmt.Fprintf(out, "\ntype %d block %d (%d bytes):\n%s", t, i, len(b.Raw), hex.Dump(b.Raw))
				}
			}
		}
		if len(found) > 0 {
			fmt.Fprintf(out, "\n%d undecoded block type(s): %v\n", len(found), found)
			if checkStrict {
				return fmt.Errorf("undecoded block types present")
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit non-zero when undecoded types are present")
	checkCmd.Flags().BoolVarP(&checkExamine, "examine", "e", false, "hex-dump the payloads of flagged blocks")
	rootCmd.AddCommand(checkCmd)
}
