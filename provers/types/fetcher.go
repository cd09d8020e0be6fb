package types

import (
	"github.com/BakerStreetPhantom/zk-sha512/types"
)

// Fetcher defines the interface for fetching proving requests
type Fetcher interface {
	// Request retrieves the next message/digest pair to prove
	Request() (*types.ProofRequest, error)
}
