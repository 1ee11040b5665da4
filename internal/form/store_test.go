// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docreplace/pkg/types"
)

func TestNewStore_Empty(t *testing.T) {
	s := NewStore()
	st := s.Snapshot()
	assert.False(t, st.HasInput())
	assert.Equal(t, "", st.OutputName)
	assert.NotNil(t, st.Replacements)
	assert.Empty(t, st.Replacements)
}

func TestNewStore_Seeded(t *testing.T) {
	seed := types.DefaultReplacements()
	s := NewStore(WithSeed(seed), WithOutputName(types.DefaultOutputName))

	seed[0].Find = "MUTATED"
	st := s.Snapshot()
	assert.Equal(t, "examplePdf", st.OutputName)
	require.Len(t, st.Replacements, 5)
	assert.Equal(t, "DATE", st.Replacements[0].Find)
}

func TestSetFile(t *testing.T) {
	s := NewStore()
	s.SetFile(BytesDocument("letter.odt", []byte("x")))
	st := s.Snapshot()
	require.True(t, st.HasInput())
	assert.Equal(t, "letter.odt", st.Input.Name())

	s.SetFile(nil)
	assert.False(t, s.Snapshot().HasInput())
}

func TestSetOutputName_EmptyAllowed(t *testing.T) {
	s := NewStore(WithOutputName("x"))
	s.SetOutputName("")
	assert.Equal(t, "", s.Snapshot().OutputName)
	s.SetOutputName("  spaced name ")
	assert.Equal(t, "  spaced name ", s.Snapshot().OutputName)
}

func TestAddReplacement(t *testing.T) {
	s := NewStore(WithSeed([]types.Replacement{{Find: "A", Replace: "1"}}))
	s.AddReplacement()
	want := []types.Replacement{{Find: "A", Replace: "1"}, {}}
	if diff := cmp.Diff(want, s.Snapshot().Replacements); diff != "" {
		t.Errorf("replacements mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveReplacement(t *testing.T) {
	seed := []types.Replacement{{Find: "A"}, {Find: "B"}, {Find: "C"}}
	tests := []struct {
		name    string
		index   int
		removed bool
		want    []types.Replacement
	}{
		{"first", 0, true, []types.Replacement{{Find: "B"}, {Find: "C"}}},
		{"middle", 1, true, []types.Replacement{{Find: "A"}, {Find: "C"}}},
		{"last", 2, true, []types.Replacement{{Find: "A"}, {Find: "B"}}},
		{"negative", -1, false, seed},
		{"past end", 3, false, seed},
		{"far past end", 100, false, seed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(WithSeed(seed))
			assert.Equal(t, tt.removed, s.RemoveReplacement(tt.index))
			if diff := cmp.Diff(tt.want, s.Snapshot().Replacements); diff != "" {
				t.Errorf("replacements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveReplacement_EmptyList(t *testing.T) {
	s := NewStore()
	assert.NotPanics(t, func() { s.RemoveReplacement(0) })
	assert.Empty(t, s.Snapshot().Replacements)
}

func TestUpdateReplacement_OnlyTargetField(t *testing.T) {
	s := NewStore(WithSeed([]types.Replacement{
		{Find: "A", Replace: "1"},
		{Find: "B", Replace: "2"},
	}))

	assert.True(t, s.UpdateReplacement(1, FieldReplace, "two"))
	assert.True(t, s.UpdateReplacement(0, FieldFind, "AA"))

	want := []types.Replacement{{Find: "AA", Replace: "1"}, {Find: "B", Replace: "two"}}
	if diff := cmp.Diff(want, s.Snapshot().Replacements); diff != "" {
		t.Errorf("replacements mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateReplacement_NoOps(t *testing.T) {
	seed := []types.Replacement{{Find: "A", Replace: "1"}}
	s := NewStore(WithSeed(seed))

	assert.False(t, s.UpdateReplacement(-1, FieldFind, "x"))
	assert.False(t, s.UpdateReplacement(1, FieldFind, "x"))
	assert.False(t, s.UpdateReplacement(0, Field("other"), "x"))
	assert.Equal(t, seed, s.Snapshot().Replacements)
}

func TestSnapshot_IsolatedFromLaterEdits(t *testing.T) {
	s := NewStore(WithSeed([]types.Replacement{{Find: "A"}}))
	before := s.Snapshot()

	s.UpdateReplacement(0, FieldReplace, "changed")
	s.AddReplacement()
	s.RemoveReplacement(0)

	assert.Equal(t, []types.Replacement{{Find: "A"}}, before.Replacements)
}

// TestOperationSequences applies random edit sequences to the store and to a
// plain slice model and checks both agree after every step.
func TestOperationSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		s := NewStore()
		var model []types.Replacement
		for step := 0; step < 40; step++ {
			switch rng.Intn(3) {
			case 0:
				s.AddReplacement()
				model = append(model, types.Replacement{})
			case 1:
				i := rng.Intn(len(model)+3) - 1
				s.RemoveReplacement(i)
				if i >= 0 && i < len(model) {
					model = append(model[:i:i], model[i+1:]...)
				}
			case 2:
				i := rng.Intn(len(model)+3) - 1
				v := string(rune('a' + rng.Intn(26)))
				field := FieldFind
				if rng.Intn(2) == 1 {
					field = FieldReplace
				}
				s.UpdateReplacement(i, field, v)
				if i >= 0 && i < len(model) {
					if field == FieldFind {
						model[i].Find = v
					} else {
						model[i].Replace = v
					}
				}
			}
			got := s.Snapshot().Replacements
			want := types.CloneReplacements(model)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("run %d step %d mismatch (-want +got):\n%s", run, step, diff)
			}
		}
	}
}

func TestFileDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.docx")
	require.NoError(t, os.WriteFile(path, []byte("docx-bytes"), 0o644))

	doc := FileDocument(path)
	assert.Equal(t, "cover.docx", doc.Name())

	for i := 0; i < 2; i++ {
		rc, err := doc.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, "docx-bytes", string(data))
	}
}

func TestFileDocument_Missing(t *testing.T) {
	doc := FileDocument(filepath.Join(t.TempDir(), "nope.docx"))
	_, err := doc.Open()
	assert.Error(t, err)
}
