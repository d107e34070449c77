package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvFile is loaded, if present, before the environment is read. Variables
// already set in the process environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays cfg with the FINDASH_* variables that are set. Unset
// variables leave the current values alone.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return env.Parse(cfg)
}
