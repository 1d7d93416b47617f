package config

import (
	"os"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the config file at path. A missing file is not an error:
// the embedded defaults apply, and a file that sets only some fields
// keeps the defaults for the rest.
func Load(fsys afero.Fs, path string) (*Config, error) {
	contents, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
