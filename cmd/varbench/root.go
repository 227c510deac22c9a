package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"varbench/internal/config"
	"varbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command. Running it without a subcommand
// benchmarks every registered payload.
var rootCmd = &cobra.Command{
	Use:   "varbench [algorithm]",
	Short: "Micro-benchmarks for implementation variants of small kernels",
	Long: `varbench runs multiple implementation variants of the same small
computational task, measures per-call latency with randomized execution
order and CPU pinning, verifies the variants agree with a reference
implementation, and reports comparative statistics.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmarks(cmd, args)
	},
}

// Execute runs the command tree. Called once from main.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			// A panicking trial aborts the whole run by design;
			// report it and leave.
			fmt.Fprintf(os.Stderr, "\npanic during run: %v\n", r)
			panic(r)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'varbench --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.varbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.PersistentFlags().IntSlice("sizes", []int{64, 256, 1024, 4096, 16384}, "comma-separated payload input sizes")
	rootCmd.PersistentFlags().IntP("runs", "r", 30, "measured repetitions per variant")
	rootCmd.PersistentFlags().Int("warmup", 10, "discarded warmup iterations per variant")
	rootCmd.PersistentFlags().String("seed", "", "shuffle/input seed (default: time-derived, reported)")
	rootCmd.PersistentFlags().String("csv", "", "export aggregated results to a CSV file")
	rootCmd.PersistentFlags().BoolP("filter", "f", false, "trim outliers before computing statistics")
	rootCmd.PersistentFlags().String("pin", "per-call", "CPU pinning strategy: global or per-call")

	for _, key := range []string{"verbose", "sizes", "runs", "warmup", "seed", "csv", "filter", "pin"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"))
}
