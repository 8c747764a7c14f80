package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/hashbust/hashbust/pkg/errors"
)

// GenerateDefault renders a TOML config file populated with every
// recognized option at its default value, suitable for writing out as a
// starting .hashbust.toml.
func GenerateDefault() ([]byte, error) {
	opts := Default()
	// Emit the pattern lists explicitly so the generated file shows them
	opts.IncludePatterns = []string{}
	opts.ExcludePatterns = []string{}

	header := "# hashbust configuration\n# Every option is shown with its default value.\n\n"

	body, err := gotoml.Marshal(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}
	return append([]byte(header), body...), nil
}
