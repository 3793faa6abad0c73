// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the batchpix CLI: a batch image
// converter and sequential renamer. Run with no arguments for the
// interactive wizard, or use the convert and serve subcommands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the batchpix CLI. Invoked bare, it runs
// the interactive wizard instead of printing help.
var rootCmd = &cobra.Command{
	Use:   "batchpix",
	Short: "Batch-convert images to PNG or JPEG and rename them sequentially",
	Long: `batchpix converts every supported image in a folder (webp, jpg, jpeg,
png, bmp, tiff, tif) to PNG or JPEG, optionally renaming the results with
zero-padded sequential names like image_001.png. Numbering continues past
any existing numbered files in the output folder.

Use the convert subcommand for flag-driven runs, serve for the local web
form, or run batchpix with no arguments for the interactive wizard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./batchpix.yaml or ~/.config/batchpix/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("batchpix")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "batchpix"))
		}
	}

	viper.SetEnvPrefix("BATCHPIX")
	viper.AutomaticEnv()

	viper.SetDefault("convert.prefix", "image")
	viper.SetDefault("convert.start_number", 1)
	viper.SetDefault("convert.format", "png")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
