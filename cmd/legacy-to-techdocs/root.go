package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linode/legacy-to-techdocs/internal/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "legacy-to-techdocs",
		Short: "Translate legacy linode.com/docs URLs to TechDocs URLs",
		Long: `legacy-to-techdocs maps legacy API docs URLs (linode.com/docs/api/...)
to their TechDocs equivalents (techdocs.akamai.com/linode-api/reference/...),
using the legacy and new OpenAPI specs as the source of truth.

Bake the specs once for faster startup, convert individual URLs, or rewrite
every legacy URL across a documentation tree.`,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./config.yaml)")

	rootCmd.AddCommand(bakeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(serveCmd)
}

// initConfig reads in the config file and matching environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}

		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TECHDOCS")
	viper.AutomaticEnv()

	config.SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
