// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docreplace/internal/form"
	"github.com/pdiddy/docreplace/internal/submit"
	"github.com/pdiddy/docreplace/pkg/types"
)

// clientConfig reads the controller settings from viper.
func clientConfig(v *viper.Viper) types.ClientConfig {
	return types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration("timeout"),
			UserAgent: v.GetString("user_agent"),
		},
		Endpoint:            v.GetString("endpoint"),
		ExpectedContentType: v.GetString("expected_content_type"),
		Extension:           v.GetString("extension"),
	}.WithDefaults()
}

// formConfig reads the form seed settings from viper.
func formConfig(v *viper.Viper) (types.FormConfig, error) {
	cfg := types.FormConfig{
		OutputName: v.GetString("output_name"),
		Preset:     v.GetString("preset"),
		OutDir:     v.GetString("out_dir"),
	}
	if v.IsSet("replacements") {
		if err := v.UnmarshalKey("replacements", &cfg.Replacements); err != nil {
			return cfg, fmt.Errorf("reading replacements from config: %w", err)
		}
	}
	return cfg, nil
}

// seedReplacements picks the starting list: inline config, then the preset
// file, then fallback.
func seedReplacements(cfg types.FormConfig, fallback []types.Replacement) ([]types.Replacement, error) {
	if cfg.Replacements != nil {
		return cfg.Replacements, nil
	}
	if cfg.Preset != "" {
		return form.LoadPreset(cfg.Preset)
	}
	return fallback, nil
}

// newController builds the submission controller for a command.
func newController(cmd *cobra.Command, v *viper.Viper, outDir string) *submit.Controller {
	var log io.Writer = io.Discard
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log = os.Stderr
	}
	if outDir == "" {
		outDir = "."
	}
	return submit.NewController(clientConfig(v),
		submit.WithSink(submit.DirSink{Dir: outDir}),
		submit.WithLog(log),
	)
}

// clipboardText is swapped in tests.
var clipboardText = clipboard.ReadAll

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll
