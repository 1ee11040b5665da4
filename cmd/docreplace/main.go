// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docreplace CLI.
// docreplace uploads a document with find/replace pairs to the document
// service and saves the edited PDF it returns.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docreplace/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docreplace CLI.
var rootCmd = &cobra.Command{
	Use:   "docreplace",
	Short: "Fill placeholders in a document and download it as PDF",
	Long: `docreplace sends a document and an ordered list of find/replace pairs to a
document-editing service and saves the PDF it returns.

Use "edit" for an interactive form, or "submit" to send everything from flags
in one shot. The service endpoint comes from --endpoint, the DOCREPLACE_ENDPOINT
environment variable, or the endpoint key of docreplace.yaml.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./docreplace.yaml or ~/.config/docreplace/docreplace.yaml)")
	pf.String("endpoint", "", "document service URL (default "+types.DefaultEndpoint+")")
	pf.Duration("timeout", 0, "request timeout; negative disables (default 60s)")
	pf.String("out-dir", "", "directory the PDF is saved into (default .)")
	pf.String("preset", "", "YAML or JSON file with replacement pairs")
	pf.BoolP("verbose", "v", false, "print progress lines to stderr")

	for flag, key := range map[string]string{
		"endpoint": "endpoint",
		"timeout":  "timeout",
		"out-dir":  "out_dir",
		"preset":   "preset",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docreplace")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docreplace"))
		}
	}

	viper.SetEnvPrefix("DOCREPLACE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
