package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"varbench/internal/algo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available algorithms and their variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tVARIANTS\tDESCRIPTION")
		for _, r := range algo.Default().All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.Name(), r.Category(), strings.Join(r.VariantNames(), ","), r.Description())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
