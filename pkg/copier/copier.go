// Package copier writes assets to their content-hashed destinations.
package copier

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hashbust/hashbust/pkg/errors"
	"github.com/hashbust/hashbust/pkg/hasher"
	"github.com/hashbust/hashbust/pkg/logging"
	"github.com/hashbust/hashbust/pkg/types"
)

// Copier copies source files into a target directory under their
// content-hashed names.
type Copier struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Copier backed by the given filesystem
func New(fs types.FS) *Copier {
	return &Copier{
		fs:     fs,
		logger: logging.GetLogger("copier"),
	}
}

// CopyToHashedPath reads the source file as an opaque byte sequence and
// writes those exact bytes to targetDir/<hashedName>, creating targetDir
// and any missing ancestors first. It returns the destination path.
//
// An existing file with the same hashed name is overwritten silently:
// identical content always maps to the identical name, so a re-run over
// unchanged input rewrites the same bytes.
func (c *Copier) CopyToHashedPath(sourcePath, targetDir string) (string, error) {
	data, err := c.fs.ReadFile(sourcePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead,
			"failed to read source file %s", sourcePath)
	}

	if err := c.fs.MkdirAll(targetDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create target directory %s", targetDir)
	}

	hashedName := hasher.HashedName(data, filepath.Base(sourcePath))
	targetPath := filepath.Join(targetDir, hashedName)

	if err := c.fs.WriteFile(targetPath, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write hashed file %s", targetPath)
	}

	c.logger.Debug().
		Str("source", sourcePath).
		Str("target", targetPath).
		Int("bytes", len(data)).
		Msg("copied asset to hashed path")

	return targetPath, nil
}
