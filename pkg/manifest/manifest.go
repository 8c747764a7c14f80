// Package manifest persists the mapping from original asset paths to
// their content-hashed counterparts.
//
// The manifest is a single JSON document with one recognized top-level
// key, "assets", holding a map of slash-normalized relative source paths
// to relative hashed paths. Paths are stored relative and slash-normalized
// regardless of the host platform, so a manifest written on one system
// resolves correctly on another.
package manifest

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/hashbust/hashbust/pkg/errors"
	"github.com/hashbust/hashbust/pkg/logging"
	"github.com/hashbust/hashbust/pkg/types"
)

// DefaultFile is the manifest filename used when none is configured
const DefaultFile = "manifest.json"

// Manifest maps relative source asset paths to relative hashed paths
type Manifest map[string]string

// document is the on-disk shape: the mapping wrapped under its schema key
type document struct {
	Assets map[string]string `json:"assets"`
}

// Load reads the manifest at path. A missing file yields an empty
// manifest; an existing file that cannot be parsed is a fatal error,
// never silently treated as empty.
func Load(filesystem types.FS, path string) (Manifest, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return Manifest{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead,
			"failed to read manifest %s", path)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse,
			"manifest %s is not valid JSON", path)
	}

	if doc.Assets == nil {
		return Manifest{}, nil
	}
	return Manifest(doc.Assets), nil
}

// Merge returns a new manifest containing every key from existing,
// overwritten key-wise by updates. Entries from earlier runs whose keys
// this run did not regenerate are preserved; that is the incremental
// guarantee. Pure function, no I/O.
func Merge(existing, updates Manifest) Manifest {
	merged := make(Manifest, len(existing)+len(updates))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	return merged
}

// Persist serializes the manifest under its schema key and writes it to
// path, creating ancestor directories as needed. The file is replaced in
// full, never appended to.
func Persist(filesystem types.FS, m Manifest, path string) error {
	logger := logging.GetLogger("manifest")

	doc := document{Assets: m}
	if doc.Assets == nil {
		doc.Assets = map[string]string{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "failed to serialize manifest")
	}
	data = append(data, '\n')

	if err := filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create manifest directory for %s", path)
	}

	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write manifest %s", path)
	}

	logger.Debug().Str("path", path).Int("entries", len(m)).Msg("manifest persisted")
	return nil
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
