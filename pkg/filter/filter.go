// Package filter decides which relative asset paths participate in hashing,
// based on ordered include and exclude regular expression lists.
package filter

import (
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/hashbust/hashbust/pkg/errors"
	"github.com/hashbust/hashbust/pkg/logging"
)

// Filter matches slash-normalized relative paths against compiled
// include and exclude patterns.
//
// Patterns use regexp search semantics, not anchored full-string matching:
// a pattern "css" matches anywhere in the path, including "icssue/file.txt".
// This mirrors common regex-search behavior; anchor patterns explicitly
// ("^css/") when segment matching is wanted.
type Filter struct {
	includes []*regexp.Regexp
	excludes []*regexp.Regexp
	logger   zerolog.Logger
}

// New compiles the include and exclude pattern lists into a Filter.
// Any pattern that is not valid regexp syntax is a fatal configuration
// error, surfaced here before any file I/O begins.
func New(includePatterns, excludePatterns []string) (*Filter, error) {
	includes, err := compileAll(includePatterns, "include")
	if err != nil {
		return nil, err
	}
	excludes, err := compileAll(excludePatterns, "exclude")
	if err != nil {
		return nil, err
	}

	return &Filter{
		includes: includes,
		excludes: excludes,
		logger:   logging.GetLogger("filter"),
	}, nil
}

func compileAll(patterns []string, kind string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigPattern,
				"invalid %s pattern %q", kind, pattern).
				WithDetail("pattern", pattern).
				WithDetail("kind", kind)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// ShouldInclude reports whether the given relative path participates in
// hashing. The path is normalized to forward slashes first. An empty
// include list means "include everything"; any exclude match vetoes
// inclusion regardless of the include result.
func (f *Filter) ShouldInclude(relativePath string) bool {
	path := filepath.ToSlash(relativePath)

	if len(f.includes) > 0 && !matchesAny(f.includes, path) {
		f.logger.Trace().Str("path", path).Msg("path matched no include pattern")
		return false
	}

	if matchesAny(f.excludes, path) {
		f.logger.Trace().Str("path", path).Msg("path matched an exclude pattern")
		return false
	}

	return true
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
