package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "fairpaycheck"

	defaultListen = ":8080"
)

// Config holds the application configuration resolved from the config
// file, environment and flags.
type Config struct {
	Listen   string `mapstructure:"listen"`
	DataFile string `mapstructure:"data-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "fairpaycheck estimates whether reported compensation is below fair market value",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("data-file", "FAIRPAYCHECK_DATA_FILE"); err != nil {
		log.Fatalf("binding FAIRPAYCHECK_DATA_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is fairpaycheck.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The default config file is optional; flags and defaults cover
	// everything.
	_ = viper.ReadInConfig()
}

func getConfig() (*Config, error) {
	config := &Config{Listen: defaultListen}
	if err := viper.Unmarshal(config); err != nil {
		return config, err
	}

	if config.Listen == "" {
		config.Listen = defaultListen
	}

	return config, nil
}
