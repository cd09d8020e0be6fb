package types

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProofRequestJSONRoundTrip(t *testing.T) {
	msg := []byte("json round trip")
	digest := ComputeDigest(msg)
	request := &ProofRequest{Message: msg, Digest: digest[:]}

	data, err := json.Marshal(request)
	require.NoError(t, err)

	var decoded ProofRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, request.Message, decoded.Message)
	require.Equal(t, request.Digest, decoded.Digest)
	require.NoError(t, decoded.Verify())
}

func TestProofRequestFromHexVector(t *testing.T) {
	// standard SHA-512 digest of the empty message
	digest, err := HexToBytes("0xcf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e")
	require.NoError(t, err)

	request := &ProofRequest{Message: HexBytes{}, Digest: digest}
	require.NoError(t, request.Verify())
}

func TestProofRequestBase64Digest(t *testing.T) {
	msg := []byte("base64 encoded digest")
	digest := ComputeDigest(msg)
	request := &ProofRequest{Message: msg, Digest: digest[:]}

	// clients may send digests base64-encoded instead of hex
	var decoded ProofRequest
	data := []byte(`{"message":"` + request.Message.String() + `","digest":"` + base64.StdEncoding.EncodeToString(digest[:]) + `"}`)
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, request.Digest, decoded.Digest)
}

func TestProofRequestVerifyRejects(t *testing.T) {
	digest := ComputeDigest([]byte("one message"))

	mismatched := &ProofRequest{Message: []byte("another message"), Digest: digest[:]}
	require.Error(t, mismatched.Verify())

	truncated := &ProofRequest{Message: []byte("one message"), Digest: digest[:32]}
	require.Error(t, truncated.Verify())
}
