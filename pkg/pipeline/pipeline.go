// Package pipeline orchestrates the asset hashing run: it walks the
// source tree, filters paths, copies each eligible file under its
// content-hashed name, and merges the results into the persisted
// manifest.
package pipeline

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/hashbust/hashbust/pkg/config"
	"github.com/hashbust/hashbust/pkg/copier"
	"github.com/hashbust/hashbust/pkg/errors"
	"github.com/hashbust/hashbust/pkg/filter"
	"github.com/hashbust/hashbust/pkg/logging"
	"github.com/hashbust/hashbust/pkg/manifest"
	"github.com/hashbust/hashbust/pkg/types"
)

// Pipeline runs the hashing pass over a source tree.
//
// Processing is sequential and fail-fast: the first I/O error aborts the
// run before the manifest is persisted, so the manifest never claims
// files that were not written. Nothing is ever deleted from the target
// directory; hashed copies accumulate across runs.
type Pipeline struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Pipeline backed by the given filesystem
func New(filesystem types.FS) *Pipeline {
	return &Pipeline{
		fs:     filesystem,
		logger: logging.GetLogger("pipeline"),
	}
}

// Result summarizes a completed run
type Result struct {
	// Hashed is the number of files hashed and copied this run
	Hashed int

	// ManifestPath is where the merged manifest was persisted
	ManifestPath string

	// Manifest is the merged mapping as persisted
	Manifest manifest.Manifest
}

// Run executes one hashing pass with the given options.
//
// Files under opts.ResourcesDir/opts.PublicDir that pass the include and
// exclude filters are copied, under content-hashed names, into the
// mirrored directory structure beneath opts.ResourcesDirTarget. The new
// source-to-hashed mapping is merged into any existing manifest at
// opts.ResourcesDirTarget/opts.ManifestFile and persisted there. A run
// over an empty or fully filtered tree still persists a valid manifest.
func (p *Pipeline) Run(opts config.Options) (*Result, error) {
	defer logging.LogDuration(time.Now(), "pipeline.run")

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pathFilter, err := filter.New(opts.IncludePatterns, opts.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	scanRoot := filepath.Join(opts.ResourcesDir, opts.PublicDir)
	targetPublicRoot := filepath.Join(opts.ResourcesDirTarget, opts.PublicDir)

	p.logger.Info().
		Str("scanRoot", scanRoot).
		Str("target", opts.ResourcesDirTarget).
		Msg("starting hashing pass")

	files, err := p.collectFiles(scanRoot)
	if err != nil {
		return nil, err
	}

	cp := copier.New(p.fs)
	updates := manifest.Manifest{}

	for _, sourcePath := range files {
		sourceRel, err := filepath.Rel(scanRoot, sourcePath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to relativize %s against %s", sourcePath, scanRoot)
		}
		sourceKey := filepath.ToSlash(sourceRel)

		if !pathFilter.ShouldInclude(sourceKey) {
			p.logger.Debug().Str("path", sourceKey).Msg("skipping filtered file")
			continue
		}

		// The target mirrors the file's position relative to the
		// resources dir, not the scan root, so the public/ level is
		// preserved under the target dir.
		resourcesRel, err := filepath.Rel(opts.ResourcesDir, sourcePath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to relativize %s against %s", sourcePath, opts.ResourcesDir)
		}
		targetDir := filepath.Join(opts.ResourcesDirTarget, filepath.Dir(resourcesRel))

		targetPath, err := cp.CopyToHashedPath(sourcePath, targetDir)
		if err != nil {
			return nil, err
		}

		targetRel, err := filepath.Rel(targetPublicRoot, targetPath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to relativize %s against %s", targetPath, targetPublicRoot)
		}
		updates[sourceKey] = filepath.ToSlash(targetRel)
	}

	manifestPath := filepath.Join(opts.ResourcesDirTarget, opts.ManifestFile)
	existing, err := manifest.Load(p.fs, manifestPath)
	if err != nil {
		return nil, err
	}
	merged := manifest.Merge(existing, updates)
	if err := manifest.Persist(p.fs, merged, manifestPath); err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("hashed", len(updates)).
		Int("manifestEntries", len(merged)).
		Str("manifest", manifestPath).
		Msg("hashing pass complete")

	return &Result{
		Hashed:       len(updates),
		ManifestPath: manifestPath,
		Manifest:     merged,
	}, nil
}

// collectFiles walks root depth-first and returns every regular file,
// in the stable order ReadDir provides. Symlinked files are followed;
// symlinked directories are not recursed into, to avoid cycles.
func (p *Pipeline) collectFiles(root string) ([]string, error) {
	var files []string

	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := p.fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrScan, "failed to read directory %s", dir)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.Type()&fs.ModeSymlink != 0 {
				info, err := p.fs.Stat(path)
				if err != nil {
					return errors.Wrapf(err, errors.ErrScan,
						"failed to stat symlink %s", path)
				}
				// Symlinked directories are skipped entirely
				if info.Mode().IsRegular() {
					files = append(files, path)
				}
				continue
			}

			if entry.IsDir() {
				if err := walk(path); err != nil {
					return err
				}
				continue
			}

			if entry.Type().IsRegular() {
				files = append(files, path)
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return files, nil
}
