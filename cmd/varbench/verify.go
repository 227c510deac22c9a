package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"varbench/internal/algo"
	"varbench/internal/report"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [algorithm]",
	Short: "Verify variant correctness against the reference, without timing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runners, err := selectRunners(algo.Default(), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, r := range runners {
			fmt.Fprintf(out, "%s:\n", r.Name())
			err := r.Verify()
			report.PrintVerification(out, r.Name(), err)
			if err != nil {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d algorithms failed verification", failed, len(runners))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
