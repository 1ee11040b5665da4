// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notify turns submission outcomes into user-facing notices.
package notify

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pdiddy/docreplace/internal/submit"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("197"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func textPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Notice is a titled message for the user.
type Notice struct {
	Title  string
	Detail string
}

// Describe maps a submission error to a notice. Each error kind gets its own
// title so a rejected request reads differently from an unexpected reply.
func Describe(err error) Notice {
	var (
		missing *submit.MissingInputError
		network *submit.NetworkError
		timeout *submit.TimeoutError
		server  *submit.ServerError
		ctype   *submit.UnexpectedContentTypeError
		dl      *submit.DownloadError
	)
	switch {
	case err == nil:
		return Notice{}
	case errors.As(err, &missing):
		return Notice{Title: "Please upload a file first."}
	case errors.Is(err, submit.ErrBusy):
		return Notice{Title: "Still processing the previous submission."}
	case errors.As(err, &timeout):
		return Notice{Title: "The document service did not answer in time.", Detail: timeout.Error()}
	case errors.As(err, &network):
		return Notice{Title: "An error occurred while processing the file.", Detail: fmt.Sprintf("could not reach %s", network.Endpoint)}
	case errors.As(err, &server):
		return Notice{
			Title:  fmt.Sprintf("Server error: %d %s", server.Status, server.StatusText),
			Detail: Sanitize(server.Body),
		}
	case errors.As(err, &ctype):
		got := ctype.ContentType
		if got == "" {
			got = "no content type"
		}
		return Notice{
			Title:  fmt.Sprintf("Expected %s but got: %s", ctype.Expected, got),
			Detail: Sanitize(ctype.Body),
		}
	case errors.As(err, &dl):
		return Notice{Title: "The document was processed but could not be saved.", Detail: dl.Err.Error()}
	default:
		return Notice{Title: "An error occurred while processing the file.", Detail: err.Error()}
	}
}

// Sanitize reduces a diagnostic body to plain text: markup is stripped,
// entities are decoded, and blank lines are collapsed.
func Sanitize(body string) string {
	if body == "" {
		return ""
	}
	text := html.UnescapeString(textPolicy().Sanitize(body))
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// Notifier writes notices to a terminal.
type Notifier struct {
	w io.Writer
}

// New returns a Notifier writing to w.
func New(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

// Alert writes the notice for err.
func (n *Notifier) Alert(err error) {
	notice := Describe(err)
	if notice.Title == "" {
		return
	}
	fmt.Fprintln(n.w, errorStyle.Render("✗ "+notice.Title))
	if notice.Detail == "" {
		return
	}
	for _, line := range strings.Split(notice.Detail, "\n") {
		fmt.Fprintln(n.w, detailStyle.Render("  "+line))
	}
}

// Saved reports a completed download.
func (n *Notifier) Saved(res *submit.Result) {
	fmt.Fprintln(n.w, successStyle.Render(fmt.Sprintf("✓ Saved %s (%d bytes)", res.Path, res.Bytes)))
}

// Warn writes a non-fatal warning line.
func (n *Notifier) Warn(format string, args ...any) {
	fmt.Fprintln(n.w, warnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Title writes a header line.
func (n *Notifier) Title(s string) {
	fmt.Fprintln(n.w, titleStyle.Render(s))
}
