// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pdiddy/docreplace/pkg/types"
)

// Delivery describes one saved download.
type Delivery struct {
	Filename    string
	ContentType string
	Path        string
	Bytes       int64
}

// Sink receives the body of a successful response. Deliver either stores
// the complete body under filename or stores nothing.
type Sink interface {
	Deliver(filename, contentType string, body io.Reader) (Delivery, error)
}

// OutputFilename returns the saved file name for an output name and
// extension. An empty name falls back to types.FallbackOutputName; path
// separators are replaced so the file always lands in the sink directory.
func OutputFilename(name, ext string) string {
	if name == "" {
		name = types.FallbackOutputName
	}
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if ext == "" {
		return name
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// DirSink saves downloads into Dir. The body is staged in a temporary file
// in the same directory and renamed into place once complete; the temporary
// file is removed on every failure path.
type DirSink struct {
	Dir string
}

func (s DirSink) Deliver(filename, contentType string, body io.Reader) (Delivery, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Delivery{}, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".docreplace-*.tmp")
	if err != nil {
		return Delivery{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	n, copyErr := io.Copy(tmpFile, body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		return Delivery{}, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		return Delivery{}, fmt.Errorf("closing temp file: %w", closeErr)
	}

	destPath := filepath.Join(dir, filename)
	if err := os.Rename(tmpPath, destPath); err != nil {
		return Delivery{}, fmt.Errorf("renaming temp file: %w", err)
	}
	committed = true

	return Delivery{
		Filename:    filename,
		ContentType: contentType,
		Path:        destPath,
		Bytes:       n,
	}, nil
}

// MemorySink keeps downloads in memory.
type MemorySink struct {
	mu    sync.Mutex
	files []MemoryFile
}

// MemoryFile is one download held by a MemorySink.
type MemoryFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (s *MemorySink) Deliver(filename, contentType string, body io.Reader) (Delivery, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, body)
	if err != nil {
		return Delivery{}, fmt.Errorf("reading download: %w", err)
	}
	s.mu.Lock()
	s.files = append(s.files, MemoryFile{Filename: filename, ContentType: contentType, Data: buf.Bytes()})
	s.mu.Unlock()
	return Delivery{Filename: filename, ContentType: contentType, Path: filename, Bytes: n}, nil
}

// Files returns the downloads received so far.
func (s *MemorySink) Files() []MemoryFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MemoryFile, len(s.files))
	copy(out, s.files)
	return out
}
