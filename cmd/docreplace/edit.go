// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docreplace/internal/form"
	"github.com/pdiddy/docreplace/internal/notify"
	"github.com/pdiddy/docreplace/internal/prompt"
	"github.com/pdiddy/docreplace/internal/submit"
	"github.com/pdiddy/docreplace/pkg/types"
)

var editCmd = &cobra.Command{
	Use:   "edit [document]",
	Short: "Edit the form interactively and submit it",
	Long: `Edit opens an interactive form: choose the document, set the PDF name,
add, change or remove replacement pairs, then download the edited document.
The form starts with the replacements from the config file or --preset, or
with the DATE, COMP_NAME, HM_NAME, JOB_TITLE and POS_NAME placeholders.

Failed submissions are reported and the form stays open for another try.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().Bool("no-animation", false, "disable the progress spinner")
	editCmd.Flags().Bool("copy-path", false, "copy each saved file path to the clipboard")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	fcfg, err := formConfig(v)
	if err != nil {
		return err
	}
	seed, err := seedReplacements(fcfg, types.DefaultReplacements())
	if err != nil {
		return err
	}
	name := fcfg.OutputName
	if name == "" {
		name = types.DefaultOutputName
	}

	store := form.NewStore(form.WithSeed(seed), form.WithOutputName(name))
	if len(args) == 1 {
		store.SetFile(form.FileDocument(args[0]))
	}

	out := cmd.ErrOrStderr()
	notifier := notify.New(out)
	notifier.Title("Document Editor")

	noAnimation, _ := cmd.Flags().GetBool("no-animation")
	copyPath, _ := cmd.Flags().GetBool("copy-path")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	editor := prompt.NewEditor(
		prompt.NewSurveyDriver(out),
		store,
		newController(cmd, v, fcfg.OutDir),
		out,
		prompt.WithAnimation(!noAnimation),
		prompt.WithAfterSave(func(res *submit.Result) {
			if !copyPath {
				return
			}
			if err := copyToClipboard(res.Path); err != nil {
				notifier.Warn("could not copy path to clipboard: %v", err)
			}
		}),
	)
	return editor.Run(ctx)
}
