package types

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the prover configuration
type Config struct {
	RootDir string

	// RequestFile is used when the request source is a local file
	RequestFile string
	// RequestURL is used when fetching proving requests over HTTP
	RequestURL string
	// PreimageSize is the message length in bytes the compiled circuit accepts
	PreimageSize int
}

func NewConfig(args ...string) *Config {
	// Parse configuration from environment variables or command line args
	size, _ := strconv.Atoi(getEnv("PREIMAGE_SIZE", "64"))
	config := Config{
		RootDir:      getEnv("ROOT", "."),
		RequestFile:  getEnv("REQUEST_FILE", ""),
		RequestURL:   getEnv("REQUEST_URL", ""),
		PreimageSize: size,
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root", "--request", "--url", "--size":
			if len(args) <= i+1 {
				panic(fmt.Errorf("missing argument for %s", args[i]))
			}
		default:
			continue
		}

		switch args[i] {
		case "--root":
			config.RootDir = args[i+1]
		case "--request":
			config.RequestFile = args[i+1]
		case "--url":
			config.RequestURL = args[i+1]
		case "--size":
			config.PreimageSize, _ = strconv.Atoi(args[i+1])
		}
		i++
	}

	return &config
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
