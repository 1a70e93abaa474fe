package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir. It refuses to
// overwrite an existing configuration file.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	dest := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, dest)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s already exists, refusing to overwrite", dest)
	}

	if err := afero.WriteFile(fsys, dest, defaultConfigData, 0644); err != nil {
		return nil, err
	}
	logger.Printf("Created %s", dest)

	return Load(fsys, dir)
}
