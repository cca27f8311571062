package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rileyhilliard/pnodemon/internal/errors"
)

// EnvFileName is the dotenv file read from the working directory.
const EnvFileName = ".env"

// LoadEnvFile copies KEY=value pairs from a dotenv file into the process
// environment so PNODEMON_* overrides can live next to the project.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read "+path,
			"Each line should look like PNODEMON_JITTER=5")
	}
	return nil
}
