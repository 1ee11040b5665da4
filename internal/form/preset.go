// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docreplace/pkg/types"
)

// presetFile is the document form of a preset: either a bare list of pairs
// or a mapping with a replacements key.
type presetFile struct {
	OutputName   string              `yaml:"output_name"`
	Replacements []types.Replacement `yaml:"replacements"`
}

// LoadPreset reads a replacements preset from path. Files ending in .json
// are decoded as JSON; everything else goes through ParsePreset.
func LoadPreset(path string) ([]types.Replacement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var rs []types.Replacement
		if err := json.Unmarshal(data, &rs); err != nil {
			return nil, fmt.Errorf("parsing preset %s: %w", path, err)
		}
		return rs, nil
	}
	rs, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	return rs, nil
}

// ParsePreset decodes replacements from YAML (a list of find/replace
// mappings, or a mapping with a replacements list). JSON arrays parse the
// same way. Text that is not structured falls back to FIND=REPLACE lines.
func ParsePreset(data []byte) ([]types.Replacement, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []types.Replacement{}, nil
	}

	var list []types.Replacement
	if err := yaml.Unmarshal(trimmed, &list); err == nil {
		return list, nil
	}

	var doc presetFile
	if err := yaml.Unmarshal(trimmed, &doc); err == nil && doc.Replacements != nil {
		return doc.Replacements, nil
	}

	return ParsePairLines(string(trimmed))
}

// ParsePairLines parses one FIND=REPLACE pair per line. Blank lines and
// lines starting with # are skipped.
func ParsePairLines(text string) ([]types.Replacement, error) {
	out := []types.Replacement{}
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r, err := ParsePair(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParsePair splits s on its first '=' into a replacement. The find side
// must be non-empty; the replace side may be empty.
func ParsePair(s string) (types.Replacement, error) {
	find, replace, ok := strings.Cut(s, "=")
	if !ok {
		return types.Replacement{}, fmt.Errorf("expected FIND=REPLACE, got %q", s)
	}
	if find == "" {
		return types.Replacement{}, fmt.Errorf("empty find text in %q", s)
	}
	return types.Replacement{Find: find, Replace: replace}, nil
}
