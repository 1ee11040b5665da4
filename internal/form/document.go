// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Document is the input artifact uploaded with a submission.
type Document interface {
	// Name is the file name sent with the upload.
	Name() string

	// Open returns a fresh reader over the document content. Each call
	// starts from the beginning so a document can be submitted again.
	Open() (io.ReadCloser, error)
}

type fileDocument struct {
	path string
}

// FileDocument returns a Document backed by the file at path. The file is
// opened lazily on each Open call; no extension check is made.
func FileDocument(path string) Document {
	return fileDocument{path: path}
}

func (d fileDocument) Name() string { return filepath.Base(d.path) }

func (d fileDocument) Open() (io.ReadCloser, error) {
	return os.Open(d.path)
}

type bytesDocument struct {
	name string
	data []byte
}

// BytesDocument returns an in-memory Document.
func BytesDocument(name string, data []byte) Document {
	return bytesDocument{name: name, data: data}
}

func (d bytesDocument) Name() string { return d.name }

func (d bytesDocument) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(d.data)), nil
}
