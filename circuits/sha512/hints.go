package sha512

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hint functions used by the gadget.
func GetHints() []solver.Hint {
	return []solver.Hint{pieceHint, evenOddHint, carryHint}
}

// pieceHint splits the last input into little-endian pieces. The leading
// inputs give the piece widths in bits.
func pieceHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != len(outputs)+1 {
		return fmt.Errorf("expected %d widths and a value, got %d inputs", len(outputs), len(inputs))
	}
	v := new(big.Int).Set(inputs[len(inputs)-1])
	mask := new(big.Int)
	for i := range outputs {
		if !inputs[i].IsUint64() {
			return fmt.Errorf("piece width %d is not an integer", i)
		}
		w := uint(inputs[i].Uint64())
		mask.Lsh(big.NewInt(1), w)
		mask.Sub(mask, big.NewInt(1))
		outputs[i].And(v, mask)
		v.Rsh(v, w)
	}
	return nil
}

// evenOddHint splits an interleaved sum into the 64-bit word living on the
// even bit positions and the word on the odd positions. Each word is returned
// as four 16-bit limbs, little-endian: outputs[0..3] even, outputs[4..7] odd.
func evenOddHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 8 {
		return fmt.Errorf("expected 1 input and 8 outputs, got %d and %d", len(inputs), len(outputs))
	}
	var evn, odd uint64
	for i := 0; i < 64; i++ {
		evn |= uint64(inputs[0].Bit(2*i)) << i
		odd |= uint64(inputs[0].Bit(2*i+1)) << i
	}
	for j := 0; j < 4; j++ {
		outputs[j].SetUint64(evn >> (16 * j) & 0xffff)
		outputs[4+j].SetUint64(odd >> (16 * j) & 0xffff)
	}
	return nil
}

// carryHint cuts a raw field sum at the 2^64 boundary: outputs are the
// reduced 64-bit result and the carry.
func carryHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 2 {
		return fmt.Errorf("expected 1 input and 2 outputs, got %d and %d", len(inputs), len(outputs))
	}
	mask := new(big.Int).Lsh(big.NewInt(1), 64)
	mask.Sub(mask, big.NewInt(1))
	outputs[0].And(inputs[0], mask)
	outputs[1].Rsh(inputs[0], 64)
	return nil
}
