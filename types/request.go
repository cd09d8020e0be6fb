package types

import (
	"bytes"
	"crypto/sha512"
	"fmt"
)

// ProofRequest is one proving job: a message and the SHA-512 digest the proof
// must bind it to.
type ProofRequest struct {
	Message HexBytes `json:"message"`
	Digest  HexBytes `json:"digest"`
}

// ComputeDigest returns the reference SHA-512 digest of msg.
func ComputeDigest(msg []byte) [64]byte {
	return sha512.Sum512(msg)
}

// Verify checks the request digest against the reference hash before any
// proving work is spent on it.
func (r *ProofRequest) Verify() error {
	if len(r.Digest) != sha512.Size {
		return fmt.Errorf("digest is %d bytes, want %d", len(r.Digest), sha512.Size)
	}
	digest := ComputeDigest(r.Message)
	if !bytes.Equal(digest[:], r.Digest) {
		return fmt.Errorf("digest mismatch for %d-byte message", len(r.Message))
	}
	return nil
}
