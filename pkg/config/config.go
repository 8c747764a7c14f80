// Package config defines the hashing pipeline's configuration surface.
//
// Every recognized option is an explicit field on Options with a
// documented default; there is no open-ended keyword map. Values are
// layered defaults < config file < HASHBUST_* environment variables,
// with command-line flags applied on top by the CLI.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hashbust/hashbust/pkg/errors"
	"github.com/hashbust/hashbust/pkg/filter"
	"github.com/hashbust/hashbust/pkg/manifest"
)

// Default option values
const (
	DefaultResourcesDir       = "resources"
	DefaultPublicDir          = "public"
	DefaultResourcesDirTarget = "resources-hashed"
	DefaultManifestFile       = manifest.DefaultFile
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "HASHBUST_"

// configFileNames are the config files probed in the working directory,
// in order, when no explicit path is given
var configFileNames = []string{".hashbust.toml", "hashbust.toml"}

// Options enumerates every recognized pipeline option
type Options struct {
	// ResourcesDir is the root of the source asset tree
	ResourcesDir string `koanf:"resources_dir" toml:"resources_dir"`

	// PublicDir is the subdirectory of ResourcesDir that is scanned;
	// manifest keys are relative to ResourcesDir/PublicDir
	PublicDir string `koanf:"public_dir" toml:"public_dir"`

	// ResourcesDirTarget is where hashed copies and the manifest are written
	ResourcesDirTarget string `koanf:"resources_dir_target" toml:"resources_dir_target"`

	// ManifestFile is the manifest filename under ResourcesDirTarget
	ManifestFile string `koanf:"manifest_file" toml:"manifest_file"`

	// IncludePatterns are regexes a path must match to be hashed;
	// empty means include everything
	IncludePatterns []string `koanf:"include_patterns" toml:"include_patterns"`

	// ExcludePatterns are regexes that veto inclusion
	ExcludePatterns []string `koanf:"exclude_patterns" toml:"exclude_patterns"`
}

// Default returns the Options with every field at its documented default
func Default() Options {
	return Options{
		ResourcesDir:       DefaultResourcesDir,
		PublicDir:          DefaultPublicDir,
		ResourcesDirTarget: DefaultResourcesDirTarget,
		ManifestFile:       DefaultManifestFile,
		IncludePatterns:    nil,
		ExcludePatterns:    nil,
	}
}

// Validate checks the options for fatal configuration errors. Pattern
// lists are compiled here so an invalid regex is reported before any
// filesystem mutation happens.
func (o Options) Validate() error {
	if o.ResourcesDir == "" {
		return errors.New(errors.ErrInvalidInput, "resources_dir must not be empty")
	}
	if o.ResourcesDirTarget == "" {
		return errors.New(errors.ErrInvalidInput, "resources_dir_target must not be empty")
	}
	if o.ManifestFile == "" {
		return errors.New(errors.ErrInvalidInput, "manifest_file must not be empty")
	}
	_, err := filter.New(o.IncludePatterns, o.ExcludePatterns)
	return err
}

// Load builds Options from defaults, an optional TOML config file, and
// HASHBUST_* environment variables. If configFile is empty, the standard
// filenames are probed in the working directory; a missing file is not
// an error, a present-but-unparseable one is.
func Load(configFile string) (Options, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"resources_dir":        defaults.ResourcesDir,
		"public_dir":           defaults.PublicDir,
		"resources_dir_target": defaults.ResourcesDirTarget,
		"manifest_file":        defaults.ManifestFile,
	}, "."), nil); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	path := configFile
	if path == "" {
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Options{}, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		// Keys are flat, so HASHBUST_RESOURCES_DIR maps to resources_dir
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var opts Options
	if err := k.Unmarshal("", &opts); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return opts, nil
}
