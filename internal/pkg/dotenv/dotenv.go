package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	portFlag := pflag.StringP("port", "p", "", "Server port (overrides PORT environment variable)")
	pflag.Parse()

	if *portFlag != "" {
		err := os.Setenv("PORT", *portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
