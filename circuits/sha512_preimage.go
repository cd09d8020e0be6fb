package circuit

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/BakerStreetPhantom/zk-sha512/circuits/sha512"
)

// Sha512PreimageCircuit proves knowledge of a preimage for a public SHA-512
// digest.
//
// The preimage length is fixed per compiled instance: the gadget's row shape
// is determined at compile time, so a different message length needs its own
// instance. Padding is applied inside the gadget per the reference SHA-512
// rules.
type Sha512PreimageCircuit struct {
	// Preimage is the message being hashed (private input)
	Preimage []uints.U8

	// Digest is the claimed SHA-512 digest (public input)
	Digest [sha512.Size]uints.U8 `gnark:",public"`
}

// NewSha512PreimageCircuit allocates a circuit shape for preimages of exactly
// size bytes.
func NewSha512PreimageCircuit(size int) *Sha512PreimageCircuit {
	return &Sha512PreimageCircuit{Preimage: make([]uints.U8, size)}
}

// Define implements the circuit constraints
func (c *Sha512PreimageCircuit) Define(api frontend.API) error {
	h, err := sha512.New(api)
	if err != nil {
		return fmt.Errorf("sha512 gadget: %w", err)
	}
	h.Write(c.Preimage)
	sum := h.Sum()
	for i := range c.Digest {
		api.AssertIsEqual(sum[i].Val, c.Digest[i].Val)
	}
	return nil
}
