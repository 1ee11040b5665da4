// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/docreplace/internal/form"
	"github.com/pdiddy/docreplace/internal/notify"
	"github.com/pdiddy/docreplace/pkg/types"
)

var errSubmitFailed = errors.New("submission failed")

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a document with replacements and save the returned PDF",
	Long: `Submit uploads --file together with the replacement pairs and saves the
service's PDF as <name>.pdf in --out-dir.

Replacement pairs are taken, in order, from --preset, then the clipboard
(--from-clipboard), then each --replace FIND=REPLACE flag. With none of these
the replacements key of the config file is used.`,
	RunE: runSubmit,
}

func init() {
	addSubmitFlags(submitCmd.Flags())
	rootCmd.AddCommand(submitCmd)
}

func addSubmitFlags(fs *pflag.FlagSet) {
	fs.StringP("file", "f", "", "document to upload (usually .docx)")
	fs.StringP("name", "n", "", "output base name without extension (default "+types.DefaultOutputName+")")
	fs.StringArrayP("replace", "r", nil, "replacement pair FIND=REPLACE (repeatable, order kept)")
	fs.Bool("from-clipboard", false, "read replacement pairs from the clipboard")
	fs.Bool("copy-path", false, "copy the saved file path to the clipboard")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	fcfg, err := formConfig(v)
	if err != nil {
		return err
	}

	replacements, err := submitReplacements(cmd, fcfg)
	if err != nil {
		return err
	}

	name := fcfg.OutputName
	if cmd.Flags().Changed("name") {
		name, _ = cmd.Flags().GetString("name")
	} else if name == "" {
		name = types.DefaultOutputName
	}

	store := form.NewStore(form.WithSeed(replacements), form.WithOutputName(name))
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		store.SetFile(form.FileDocument(path))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	notifier := notify.New(os.Stderr)
	ctl := newController(cmd, v, fcfg.OutDir)
	res, err := ctl.Submit(ctx, store.Snapshot())
	if err != nil {
		notifier.Alert(err)
		return errSubmitFailed
	}
	notifier.Saved(res)

	if copyPath, _ := cmd.Flags().GetBool("copy-path"); copyPath {
		if err := copyToClipboard(res.Path); err != nil {
			notifier.Warn("could not copy path to clipboard: %v", err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}

// submitReplacements assembles the replacement list from flags, falling
// back to the configured seed when no flag supplies pairs.
func submitReplacements(cmd *cobra.Command, fcfg types.FormConfig) ([]types.Replacement, error) {
	fromClipboard, _ := cmd.Flags().GetBool("from-clipboard")
	pairs, _ := cmd.Flags().GetStringArray("replace")
	presetFlag := cmd.Flags().Changed("preset")

	if !presetFlag && !fromClipboard && len(pairs) == 0 {
		return seedReplacements(fcfg, nil)
	}

	out := []types.Replacement{}
	if presetFlag && fcfg.Preset != "" {
		rs, err := form.LoadPreset(fcfg.Preset)
		if err != nil {
			return nil, err
		}
		out = append(out, rs...)
	}
	if fromClipboard {
		text, err := clipboardText()
		if err != nil {
			return nil, fmt.Errorf("reading clipboard: %w", err)
		}
		rs, err := form.ParsePreset([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("parsing clipboard: %w", err)
		}
		out = append(out, rs...)
	}
	for _, p := range pairs {
		r, err := form.ParsePair(p)
		if err != nil {
			return nil, fmt.Errorf("--replace: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}
