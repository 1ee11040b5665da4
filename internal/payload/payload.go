// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package payload encodes form state into the multipart request body the
// document service expects.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"

	"github.com/pdiddy/docreplace/pkg/types"
)

// Multipart field names understood by the service.
const (
	FieldFile         = "file"
	FieldReplacements = "replacements"
	FieldOutputName   = "pdfName"
)

// EncodeReplacements renders rs as a JSON array of {find, replace} objects
// in order. A nil list encodes as [].
func EncodeReplacements(rs []types.Replacement) (string, error) {
	if rs == nil {
		rs = []types.Replacement{}
	}
	data, err := json.Marshal(rs)
	if err != nil {
		return "", fmt.Errorf("encoding replacements: %w", err)
	}
	return string(data), nil
}

// DecodeReplacements parses the replacements field back into pairs.
func DecodeReplacements(s string) ([]types.Replacement, error) {
	var rs []types.Replacement
	if err := json.Unmarshal([]byte(s), &rs); err != nil {
		return nil, fmt.Errorf("decoding replacements: %w", err)
	}
	if rs == nil {
		rs = []types.Replacement{}
	}
	return rs, nil
}

// Request is the decoded content of one submission.
type Request struct {
	FileName     string
	File         []byte
	Replacements []types.Replacement
	OutputName   string
}

// Body is a built multipart body ready to send.
type Body struct {
	Data        []byte
	ContentType string
}

// Build writes the three parts (file, replacements, pdfName) in that order.
func Build(fileName string, file io.Reader, rs []types.Replacement, outputName string) (*Body, error) {
	encoded, err := EncodeReplacements(rs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, FieldFile, fileName))
	h.Set("Content-Type", "application/octet-stream")
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading input document: %w", err)
	}

	if err := mw.WriteField(FieldReplacements, encoded); err != nil {
		return nil, fmt.Errorf("writing replacements field: %w", err)
	}
	if err := mw.WriteField(FieldOutputName, outputName); err != nil {
		return nil, fmt.Errorf("writing output name field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return &Body{Data: buf.Bytes(), ContentType: mw.FormDataContentType()}, nil
}

// Parse decodes a multipart body produced by Build. The service side of
// tests uses it to assert on what was sent.
func Parse(r io.Reader, boundary string) (*Request, error) {
	mr := multipart.NewReader(r, boundary)
	req := &Request{}
	var sawReplacements bool
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading part: %w", err)
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", part.FormName(), err)
		}
		switch part.FormName() {
		case FieldFile:
			req.FileName = part.FileName()
			req.File = data
		case FieldReplacements:
			rs, err := DecodeReplacements(string(data))
			if err != nil {
				return nil, err
			}
			req.Replacements = rs
			sawReplacements = true
		case FieldOutputName:
			req.OutputName = string(data)
		}
	}
	if !sawReplacements {
		return nil, fmt.Errorf("missing %s field", FieldReplacements)
	}
	return req, nil
}
