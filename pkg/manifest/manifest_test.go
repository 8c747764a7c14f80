// Test Type: Unit Test
// Description: Tests for the manifest package - load, merge, and persist of the asset mapping

package manifest_test

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashbust/hashbust/pkg/errors"
	"github.com/hashbust/hashbust/pkg/filesystem"
	"github.com/hashbust/hashbust/pkg/manifest"
)

func TestLoad_AbsentFile(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	m, err := manifest.Load(fs, "target/manifest.json")
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)
}

func TestLoad_MalformedFile(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile("target/manifest.json", []byte("{not json"), 0644))

	_, err := manifest.Load(fs, "target/manifest.json")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestLoad_MissingAssetsKey(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile("target/manifest.json", []byte("{}"), 0644))

	m, err := manifest.Load(fs, "target/manifest.json")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestPersistAndLoad_RoundTrip(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	original := manifest.Manifest{
		"css/app.css": "css/app.f2b804d3e3bd61d76922a667f90e66d8.css",
		"js/app.js":   "js/app.028a78f54fafe70dec2b7e682852226e.js",
	}

	require.NoError(t, manifest.Persist(fs, original, "target/sub/manifest.json"))

	loaded, err := manifest.Load(fs, "target/sub/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestPersist_WrapsUnderSchemaKey(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	m := manifest.Manifest{"css/a.css": "css/a.abc.css"}
	require.NoError(t, manifest.Persist(fs, m, "target/manifest.json"))

	data, err := fs.ReadFile("target/manifest.json")
	require.NoError(t, err)

	var doc map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "assets")
	assert.Equal(t, "css/a.abc.css", doc["assets"]["css/a.css"])
}

func TestPersist_EmptyManifest(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, manifest.Persist(fs, manifest.Manifest{}, "target/manifest.json"))

	loaded, err := manifest.Load(fs, "target/manifest.json")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestPersist_OverwritesInFull(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, manifest.Persist(fs, manifest.Manifest{"a": "1", "b": "2"}, "m.json"))
	require.NoError(t, manifest.Persist(fs, manifest.Manifest{"a": "1"}, "m.json"))

	loaded, err := manifest.Load(fs, "m.json")
	require.NoError(t, err)
	assert.Equal(t, manifest.Manifest{"a": "1"}, loaded)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing manifest.Manifest
		updates  manifest.Manifest
		expected manifest.Manifest
	}{
		{
			name:     "updates_win_on_same_key",
			existing: manifest.Manifest{"css/a.css": "css/a.old.css"},
			updates:  manifest.Manifest{"css/a.css": "css/a.new.css"},
			expected: manifest.Manifest{"css/a.css": "css/a.new.css"},
		},
		{
			name:     "unrelated_keys_preserved",
			existing: manifest.Manifest{"css/a.css": "css/a.x.css"},
			updates:  manifest.Manifest{"js/b.js": "js/b.y.js"},
			expected: manifest.Manifest{"css/a.css": "css/a.x.css", "js/b.js": "js/b.y.js"},
		},
		{
			name:     "empty_existing",
			existing: manifest.Manifest{},
			updates:  manifest.Manifest{"a": "1"},
			expected: manifest.Manifest{"a": "1"},
		},
		{
			name:     "empty_updates",
			existing: manifest.Manifest{"a": "1"},
			updates:  manifest.Manifest{},
			expected: manifest.Manifest{"a": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, manifest.Merge(tt.existing, tt.updates))
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	existing := manifest.Manifest{"a": "old"}
	updates := manifest.Manifest{"a": "new"}

	merged := manifest.Merge(existing, updates)

	assert.Equal(t, "old", existing["a"])
	assert.Equal(t, "new", merged["a"])
}
