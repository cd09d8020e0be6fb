package prover

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BakerStreetPhantom/zk-sha512/types"
)

// FileFetcher implements Fetcher by reading from a local JSON file
type FileFetcher struct {
	FilePath string
}

// NewFileFetcher creates a new FileFetcher with the given file path
func NewFileFetcher(filePath string) *FileFetcher {
	return &FileFetcher{
		FilePath: filePath,
	}
}

// Request reads and parses the proving request from the file
func (f *FileFetcher) Request() (*types.ProofRequest, error) {
	// Read the file
	data, err := os.ReadFile(f.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", f.FilePath, err)
	}

	// Parse JSON
	var request types.ProofRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &request, nil
}
