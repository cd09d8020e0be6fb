package sha512

import (
	"math"

	"github.com/consensys/gnark/frontend"
)

// evensMask is the spread form of an all-ones word: a one on every even
// interleaved position. Subtracting a spread form from it complements the
// word it encodes.
var evensMask = spreadBig(math.MaxUint64)

// evenOdd splits a sum of up to three spread forms into the word living on
// the even interleaved positions and the word on the odd positions. Summing
// spread forms never carries past one interleaved slot, so for two operands
// the even word is their XOR and the odd word their AND.
func (g *Gadget) evenOdd(sum frontend.Variable) (evn, odd Word) {
	limbs, err := g.api.Compiler().NewHint(evenOddHint, 8, sum)
	if err != nil {
		panic(err)
	}
	evn = g.limbWord(limbs[:4])
	odd = g.limbWord(limbs[4:])
	g.api.AssertIsEqual(sum, g.api.Add(evn.spread, g.api.Mul(2, odd.spread)))
	return evn, odd
}

// limbWord assembles a word from four 16-bit limbs, bounding each through the
// spread table.
func (g *Gadget) limbWord(limbs []frontend.Variable) Word {
	spreads := g.tables.lookup(limbWidth, limbs...)
	pieces := make([]piece, len(limbs))
	for i := range limbs {
		pieces[i] = piece{width: limbWidth, offset: i * limbWidth, dense: limbs[i], spread: spreads[i]}
	}
	dense, spread := recompose(g.api, pieces)
	return Word{dense: dense, spread: spread}
}

// Xor returns x ^ y.
func (g *Gadget) Xor(x, y Word) Word {
	evn, _ := g.evenOdd(g.api.Add(x.spread, y.spread))
	return evn
}

// And returns x & y.
func (g *Gadget) And(x, y Word) Word {
	_, odd := g.evenOdd(g.api.Add(x.spread, y.spread))
	return odd
}

// ch computes Ch(e, f, g) = (e & f) ^ (^e & g). The two terms occupy disjoint
// bits, so they combine with a single 2-ary modular addition.
func (g *Gadget) ch(e, f, gw Word) Word {
	_, ef := g.evenOdd(g.api.Add(e.spread, f.spread))
	notE := g.api.Sub(evensMask, e.spread)
	_, neg := g.evenOdd(g.api.Add(notE, gw.spread))
	w, _ := g.addMod64(limbSplit, ef.dense, neg.dense)
	return w
}

// maj computes Maj(a, b, c) from the odd positions of the three-way spread
// sum: a bit of the majority is set exactly where at least two operand bits
// overflow into the odd slot.
func (g *Gadget) maj(a, b, c Word) Word {
	_, odd := g.evenOdd(g.api.Add(a.spread, b.spread, c.spread))
	return odd
}
