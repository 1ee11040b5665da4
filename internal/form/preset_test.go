// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docreplace/pkg/types"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.Replacement
	}{
		{
			name:  "yaml list",
			input: "- find: DATE\n  replace: 2026-10-17\n- find: COMP_NAME\n",
			want:  []types.Replacement{{Find: "DATE", Replace: "2026-10-17"}, {Find: "COMP_NAME"}},
		},
		{
			name:  "yaml mapping",
			input: "output_name: letter\nreplacements:\n  - find: A\n    replace: B\n",
			want:  []types.Replacement{{Find: "A", Replace: "B"}},
		},
		{
			name:  "json array",
			input: `[{"find":"X","replace":"Y"},{"find":"X","replace":"Z"}]`,
			want:  []types.Replacement{{Find: "X", Replace: "Y"}, {Find: "X", Replace: "Z"}},
		},
		{
			name:  "pair lines",
			input: "# header\nDATE=today\n\nHM_NAME=Ada Lovelace\nEMPTY=\n",
			want: []types.Replacement{
				{Find: "DATE", Replace: "today"},
				{Find: "HM_NAME", Replace: "Ada Lovelace"},
				{Find: "EMPTY"},
			},
		},
		{
			name:  "value containing equals",
			input: "EXPR=a=b",
			want:  []types.Replacement{{Find: "EXPR", Replace: "a=b"}},
		},
		{
			name:  "empty",
			input: "   \n",
			want:  []types.Replacement{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePreset([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePreset_Invalid(t *testing.T) {
	_, err := ParsePreset([]byte("just some words"))
	assert.ErrorContains(t, err, "FIND=REPLACE")

	_, err = ParsePreset([]byte("=nothing"))
	assert.ErrorContains(t, err, "empty find")
}

func TestLoadPreset(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "cover.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- find: DATE\n  replace: now\n"), 0o644))
	got, err := LoadPreset(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []types.Replacement{{Find: "DATE", Replace: "now"}}, got)

	jsonPath := filepath.Join(dir, "cover.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"find":"A","replace":"B"}]`), 0o644))
	got, err = LoadPreset(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []types.Replacement{{Find: "A", Replace: "B"}}, got)

	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"find":`), 0o644))
	_, err = LoadPreset(badJSON)
	assert.ErrorContains(t, err, "parsing preset")

	_, err = LoadPreset(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading preset")
}
