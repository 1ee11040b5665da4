// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for talking to the document service.
package httputil

import (
	"context"
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
)

// MaxDiagnosticBytes bounds how much of an error body is kept for display.
const MaxDiagnosticBytes = 64 << 10

// Send executes req once under ctx. There is no retry: a submission is
// one request whatever the outcome.
func Send(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req.WithContext(ctx))
}

// IsTimeout reports whether err came from a deadline rather than from the
// network itself.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// ReadText reads at most MaxDiagnosticBytes of r as text. Read errors are
// ignored; whatever arrived before the error is returned.
func ReadText(r io.Reader) string {
	if r == nil {
		return ""
	}
	data, _ := io.ReadAll(io.LimitReader(r, MaxDiagnosticBytes))
	return string(data)
}

// DrainAndClose discards the rest of body and closes it so the connection
// can be reused.
func DrainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	io.Copy(io.Discard, io.LimitReader(body, MaxDiagnosticBytes))
	body.Close()
}

// MediaTypeIs reports whether the Content-Type header value declares the
// media type want. Parameters such as charset are ignored. Headers that do
// not parse fall back to a case-insensitive substring check.
func MediaTypeIs(header, want string) bool {
	if header == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return strings.Contains(strings.ToLower(header), strings.ToLower(want))
	}
	return strings.EqualFold(mt, want)
}

// Success reports whether code is a 2xx status.
func Success(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
