// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt drives the form interactively from a terminal: choose the
// document, edit the output name and replacements, and submit.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/docreplace/internal/form"
	"github.com/pdiddy/docreplace/internal/notify"
	"github.com/pdiddy/docreplace/internal/submit"
)

// Submitter sends a form snapshot. *submit.Controller satisfies it.
type Submitter interface {
	Submit(ctx context.Context, st form.State) (*submit.Result, error)
}

type action int

const (
	actionSelectFile action = iota
	actionOutputName
	actionEditPair
	actionAddPair
	actionRemovePair
	actionSubmit
	actionQuit
)

var actionLabels = []string{
	actionSelectFile: "Choose document",
	actionOutputName: "Set output name",
	actionEditPair:   "Edit replacement",
	actionAddPair:    "Add replacement",
	actionRemovePair: "Remove replacement",
	actionSubmit:     "Download edited document",
	actionQuit:       "Quit",
}

const busyLabel = "Processing your document..."

// Editor runs the interactive form loop.
type Editor struct {
	driver    Driver
	store     *form.Store
	submitter Submitter
	notifier  *notify.Notifier
	out       io.Writer
	animate   bool
	afterSave func(*submit.Result)
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithAnimation enables the busy spinner on out while a submission runs.
func WithAnimation(on bool) EditorOption {
	return func(e *Editor) { e.animate = on }
}

// WithAfterSave registers a callback run after every successful download.
func WithAfterSave(fn func(*submit.Result)) EditorOption {
	return func(e *Editor) { e.afterSave = fn }
}

// NewEditor returns an Editor over store. Notices and the spinner go to out.
func NewEditor(driver Driver, store *form.Store, submitter Submitter, out io.Writer, opts ...EditorOption) *Editor {
	e := &Editor{
		driver:    driver,
		store:     store,
		submitter: submitter,
		notifier:  notify.New(out),
		out:       out,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run loops over the menu until the user quits or aborts. Submission
// failures are reported and the loop continues; only driver errors end it.
func (e *Editor) Run(ctx context.Context) error {
	for {
		if err := e.driver.Info(ctx, e.summary()); err != nil {
			return err
		}
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:      "What next?",
			Options:      actionLabels,
			DefaultIndex: int(actionSubmit),
			PageSize:     len(actionLabels),
		})
		if err != nil {
			return quitOnAbort(err)
		}

		var stepErr error
		switch action(idx) {
		case actionSelectFile:
			stepErr = e.chooseFile(ctx)
		case actionOutputName:
			stepErr = e.editOutputName(ctx)
		case actionEditPair:
			stepErr = e.editPair(ctx)
		case actionAddPair:
			e.store.AddReplacement()
			stepErr = e.editIndex(ctx, len(e.store.Snapshot().Replacements)-1)
		case actionRemovePair:
			stepErr = e.removePair(ctx)
		case actionSubmit:
			var keepGoing bool
			keepGoing, stepErr = e.submit(ctx)
			if stepErr == nil && !keepGoing {
				return nil
			}
		case actionQuit:
			return nil
		default:
			stepErr = fmt.Errorf("unknown menu choice %d", idx)
		}
		if stepErr != nil {
			return quitOnAbort(stepErr)
		}
	}
}

func quitOnAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}

func (e *Editor) summary() string {
	st := e.store.Snapshot()
	var b strings.Builder
	file := "No file selected"
	if st.HasInput() {
		file = st.Input.Name()
	}
	fmt.Fprintf(&b, "Document: %s\n", file)
	fmt.Fprintf(&b, "Output:   %q\n", st.OutputName)
	if len(st.Replacements) == 0 {
		b.WriteString("Replacements: none")
		return b.String()
	}
	b.WriteString("Replacements:")
	for i, r := range st.Replacements {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, pairLabel(r.Find, r.Replace))
	}
	return b.String()
}

func pairLabel(find, replace string) string {
	return fmt.Sprintf("%q → %q", find, replace)
}

func (e *Editor) chooseFile(ctx context.Context) error {
	path, err := e.driver.Input(ctx, InputConfig{
		Message: "Path to document",
		Help:    "Supported format: .docx",
		Validator: func(s string) error {
			info, err := os.Stat(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", s, err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", s)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	e.store.SetFile(form.FileDocument(strings.TrimSpace(path)))
	return nil
}

func (e *Editor) editOutputName(ctx context.Context) error {
	name, err := e.driver.Input(ctx, InputConfig{
		Message: "PDF file name",
		Default: e.store.Snapshot().OutputName,
		Help:    "Base name without extension",
	})
	if err != nil {
		return err
	}
	e.store.SetOutputName(name)
	return nil
}

// pickPair asks which pair to act on. ok is false when the list is empty.
func (e *Editor) pickPair(ctx context.Context, message string) (idx int, ok bool, err error) {
	rs := e.store.Snapshot().Replacements
	if len(rs) == 0 {
		return 0, false, e.driver.Info(ctx, "No replacements yet.")
	}
	options := make([]string, len(rs))
	for i, r := range rs {
		options[i] = fmt.Sprintf("%d. %s", i+1, pairLabel(r.Find, r.Replace))
	}
	idx, err = e.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

func (e *Editor) editPair(ctx context.Context) error {
	idx, ok, err := e.pickPair(ctx, "Which replacement?")
	if err != nil || !ok {
		return err
	}
	return e.editIndex(ctx, idx)
}

func (e *Editor) editIndex(ctx context.Context, idx int) error {
	rs := e.store.Snapshot().Replacements
	if idx < 0 || idx >= len(rs) {
		return nil
	}
	find, err := e.driver.Input(ctx, InputConfig{Message: "Find", Default: rs[idx].Find, Help: "Text to find"})
	if err != nil {
		return err
	}
	e.store.UpdateReplacement(idx, form.FieldFind, find)

	replace, err := e.driver.Input(ctx, InputConfig{Message: "Replace with", Default: rs[idx].Replace, Help: "Replacement text"})
	if err != nil {
		return err
	}
	e.store.UpdateReplacement(idx, form.FieldReplace, replace)
	return nil
}

func (e *Editor) removePair(ctx context.Context) error {
	idx, ok, err := e.pickPair(ctx, "Remove which replacement?")
	if err != nil || !ok {
		return err
	}
	e.store.RemoveReplacement(idx)
	return nil
}

// submit sends the current form. keepGoing reports whether the user wants
// to stay in the editor afterwards.
func (e *Editor) submit(ctx context.Context) (keepGoing bool, err error) {
	st := e.store.Snapshot()

	var (
		res       *submit.Result
		submitErr error
	)
	run := func() { res, submitErr = e.submitter.Submit(ctx, st) }
	if e.animate {
		whileBusy(e.out, busyLabel, run)
	} else {
		run()
	}

	if submitErr != nil {
		e.notifier.Alert(submitErr)
		return e.driver.Confirm(ctx, ConfirmConfig{Message: "Continue editing?", Default: true})
	}

	e.notifier.Saved(res)
	if e.afterSave != nil {
		e.afterSave(res)
	}
	return e.driver.Confirm(ctx, ConfirmConfig{Message: "Edit and submit again?", Default: false})
}
