package prover

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/BakerStreetPhantom/zk-sha512/types"
)

// APIFetcher implements Fetcher by calling a REST endpoint serving proving
// requests as JSON
type APIFetcher struct {
	URL    string
	Client *http.Client
}

// NewAPIFetcher creates a new APIFetcher with the given endpoint URL
func NewAPIFetcher(url string) *APIFetcher {
	return &APIFetcher{
		URL:    url,
		Client: &http.Client{},
	}
}

// Request retrieves the next proving request via HTTP GET
func (a *APIFetcher) Request() (*types.ProofRequest, error) {
	resp, err := a.Client.Get(a.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var request types.ProofRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &request, nil
}
