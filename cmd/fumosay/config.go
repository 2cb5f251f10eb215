package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/fumosay"
	fumoyaml "github.com/fwojciec/fumosay/yaml"
)

// loadConfig loads the config file named by path, or the default file in
// configDir when path is empty. A missing default file yields the built-in
// defaults; a missing explicit file is an error. The returned path is the
// file that was loaded, if any.
func loadConfig(path, configDir string) (fumosay.Config, string, error) {
	if path != "" {
		cfg, err := fumoyaml.Load(path)
		if err != nil {
			return fumosay.Config{}, "", err
		}
		return cfg, path, nil
	}
	if configDir == "" {
		return fumosay.DefaultConfig(), "", nil
	}

	path = filepath.Join(configDir, "fumosay", "config.yaml")
	cfg, err := fumoyaml.Load(path)
	switch {
	case err == nil:
		return cfg, path, nil
	case errors.Is(err, os.ErrNotExist):
		return fumosay.DefaultConfig(), "", nil
	default:
		return fumosay.Config{}, "", err
	}
}
