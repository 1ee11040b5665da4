// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/docreplace/internal/submit"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantTitle  string
		wantDetail string
	}{
		{"nil", nil, "", ""},
		{"missing input", &submit.MissingInputError{}, "Please upload a file first.", ""},
		{"busy", submit.ErrBusy, "Still processing the previous submission.", ""},
		{
			"network",
			&submit.NetworkError{Endpoint: "http://127.0.0.1:5000/edit", Err: errors.New("connection refused")},
			"An error occurred while processing the file.",
			"could not reach http://127.0.0.1:5000/edit",
		},
		{
			"timeout",
			&submit.TimeoutError{Timeout: 30 * time.Second, Err: context.DeadlineExceeded},
			"The document service did not answer in time.",
			"request timed out after 30s",
		},
		{
			"server",
			&submit.ServerError{Status: 500, StatusText: "Internal Server Error", Body: "boom"},
			"Server error: 500 Internal Server Error",
			"boom",
		},
		{
			"content type",
			&submit.UnexpectedContentTypeError{ContentType: "text/html", Expected: "application/pdf", Body: "<p>oops</p>"},
			"Expected application/pdf but got: text/html",
			"oops",
		},
		{
			"content type missing",
			&submit.UnexpectedContentTypeError{Expected: "application/pdf"},
			"Expected application/pdf but got: no content type",
			"",
		},
		{
			"download",
			&submit.DownloadError{Filename: "a.pdf", Err: errors.New("disk full")},
			"The document was processed but could not be saved.",
			"disk full",
		},
		{
			"wrapped server",
			fmt.Errorf("submitting: %w", &submit.ServerError{Status: 404, StatusText: "Not Found"}),
			"Server error: 404 Not Found",
			"",
		},
		{"other", errors.New("opening cover.docx: permission denied"), "An error occurred while processing the file.", "opening cover.docx: permission denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.err)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantDetail, got.Detail)
		})
	}
}

func TestSanitize(t *testing.T) {
	body := `<!doctype html>
<html><head><title>500 Internal Server Error</title></head>
<body><h1>Internal Server Error</h1>
<p>KeyError: &#39;file&#39; &amp; more</p>
<script>alert(1)</script></body></html>`

	got := Sanitize(body)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "alert(1)")
	assert.Contains(t, got, "Internal Server Error")
	assert.Contains(t, got, "KeyError: 'file' & more")

	assert.Equal(t, "a < b", Sanitize("a < b"))
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "line one\nline two", Sanitize("line one\n\n   \nline two\n"))
}

func TestNotifier_Alert(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf)

	n.Alert(&submit.ServerError{Status: 500, StatusText: "Internal Server Error", Body: "boom\ntrace"})
	out := buf.String()
	assert.Contains(t, out, "Server error: 500 Internal Server Error")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "trace")

	buf.Reset()
	n.Alert(nil)
	assert.Empty(t, buf.String())
}

func TestNotifier_Saved(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Saved(&submit.Result{Delivery: submit.Delivery{Path: "out/letter.pdf", Bytes: 42}})
	assert.Contains(t, buf.String(), "Saved out/letter.pdf (42 bytes)")
}
