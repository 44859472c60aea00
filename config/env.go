// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by LoadEnv when no file is named.
const DefaultEnvFile = ".env"

// LoadEnv copies KEY=VALUE pairs from the dotenv files into the process
// environment, where COLEXNET_ keys then override configuration. Variables
// already set are left alone. A missing file is not an error; found reports
// whether any file was read.
func LoadEnv(files ...string) (found bool, err error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return found, err
		}
		found = true
	}

	return found, nil
}
