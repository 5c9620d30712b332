package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv reads KEY=VALUE files into the process environment. Variables
// already set are kept. With no files ".env" is read; a missing file is not
// an error.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading %s: %w", file, err)
		}
	}
	return nil
}
