package config

import (
	"log"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration to path so the user has a
// commented file to edit. An existing file is left alone.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) error {
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}
	if ok {
		logger.Printf("%s already exists, leaving it alone", path)
		return nil
	}

	if err := afero.WriteFile(fsys, path, defaultConfigData, 0644); err != nil {
		return err
	}
	logger.Printf("wrote %s", path)
	return nil
}
