package circuit

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/BakerStreetPhantom/zk-sha512/circuits/sha512"
)

// Sha512BlockCircuit proves one Merkle-Damgard step: starting from a public
// chaining value, compressing one private 1024-bit block yields the public
// output chaining value. Enclosing protocols that manage their own padding
// and block streaming can compose proofs of this circuit.
type Sha512BlockCircuit struct {
	// Block is the 128-byte message block (private input)
	Block [sha512.BlockSize]uints.U8

	// ChainIn is the input chaining value, the IV for a first block (public input)
	ChainIn [8]frontend.Variable `gnark:",public"`
	// ChainOut is the chaining value after compression and feed-forward (public input)
	ChainOut [8]frontend.Variable `gnark:",public"`
}

// Define implements the circuit constraints
func (c *Sha512BlockCircuit) Define(api frontend.API) error {
	g, err := sha512.NewGadget(api)
	if err != nil {
		return fmt.Errorf("sha512 gadget: %w", err)
	}
	state := g.NewState(c.ChainIn)
	out := g.Compress(state, g.PackBlock(c.Block[:]))
	for i, w := range out.Words() {
		api.AssertIsEqual(w.Val(), c.ChainOut[i])
	}
	return nil
}
