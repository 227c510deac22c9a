// Package config loads and validates the run configuration from flags,
// environment and an optional config file. Configuration errors are
// boundary errors: they are reported before the engine runs and never
// reach the measurement loop.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes viper from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; missing files are fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".varbench")
	}

	viper.SetEnvPrefix("VARBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("sizes", []int{64, 256, 1024, 4096, 16384})
	viper.SetDefault("runs", 30)
	viper.SetDefault("warmup", 10)
	viper.SetDefault("pin", "per-call")
	viper.SetDefault("filter", false)
	viper.SetDefault("verbose", false)

	// A missing config file is not an error; everything has defaults.
	_ = viper.ReadInConfig()
}
