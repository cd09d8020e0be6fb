package sha512

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark/frontend"
)

var twoPow64 = new(big.Int).Lsh(big.NewInt(1), 64)

// addMod64 adds 2 to 5 bounded 64-bit terms modulo 2^64. The raw field sum is
// cut as result + carry * 2^64 with the carry bounded to ceil(log2(n)) bits,
// which pins the unique integer decomposition; an under-constrained carry
// would let an out-of-range result pass. The result is decomposed with the
// given widths, bounding it below 2^64 and producing its spread form for
// downstream bitwise use.
func (g *Gadget) addMod64(widths []int, terms ...frontend.Variable) (Word, []piece) {
	if len(terms) < 2 || len(terms) > 5 {
		panic(fmt.Sprintf("addMod64 arity %d outside [2, 5]", len(terms)))
	}
	raw := g.api.Add(terms[0], terms[1], terms[2:]...)
	outs, err := g.api.Compiler().NewHint(carryHint, 2, raw)
	if err != nil {
		panic(err)
	}
	result, carry := outs[0], outs[1]
	if carryBits := bits.Len(uint(len(terms) - 1)); carryBits == 1 {
		g.api.AssertIsBoolean(carry)
	} else {
		g.tables.rangeCheck(carry, carryBits)
	}
	g.api.AssertIsEqual(raw, g.api.Add(result, g.api.Mul(carry, twoPow64)))
	pieces, w := g.decompose(result, widths)
	return w, pieces
}

// AddMod64 adds 2 to 5 words modulo 2^64.
func (g *Gadget) AddMod64(words ...Word) Word {
	terms := make([]frontend.Variable, len(words))
	for i, w := range words {
		terms[i] = w.dense
	}
	w, _ := g.addMod64(limbSplit, terms...)
	return w
}
