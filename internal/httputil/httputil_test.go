// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_SingleAttempt(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL, nil)
	require.NoError(t, err)

	resp, err := Send(context.Background(), ts.Client(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSend_DeadlineIsTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequest(http.MethodPost, ts.URL, nil)
	require.NoError(t, err)

	_, err = Send(ctx, ts.Client(), req)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestIsTimeout(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(errors.New("connection refused")))
	assert.False(t, IsTimeout(context.Canceled))
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
}

func TestReadText_Bounded(t *testing.T) {
	long := strings.Repeat("x", MaxDiagnosticBytes+100)
	assert.Len(t, ReadText(strings.NewReader(long)), MaxDiagnosticBytes)
	assert.Equal(t, "boom", ReadText(strings.NewReader("boom")))
	assert.Equal(t, "", ReadText(nil))
}

func TestMediaTypeIs(t *testing.T) {
	tests := []struct {
		header string
		want   string
		match  bool
	}{
		{"application/pdf", "application/pdf", true},
		{"application/pdf; charset=binary", "application/pdf", true},
		{"Application/PDF", "application/pdf", true},
		{"text/html; charset=utf-8", "application/pdf", false},
		{"", "application/pdf", false},
		{"application/pdf;;bad", "application/pdf", true},
		{"application/octet-stream", "application/pdf", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.match, MediaTypeIs(tt.header, tt.want))
		})
	}
}

func TestSuccess(t *testing.T) {
	assert.True(t, Success(200))
	assert.True(t, Success(204))
	assert.False(t, Success(199))
	assert.False(t, Success(302))
	assert.False(t, Success(500))
}
