package sha512

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

const (
	// wordSize is the SHA-512 word size in bits.
	wordSize = 64
	// limbWidth is the base decomposition width: 64 = 4 limbs of 16 bits,
	// matching the largest spread table.
	limbWidth = 16
)

var (
	// limbSplit is the plain bound-and-spread decomposition.
	limbSplit = []int{16, 16, 16, 16}
	// byteSplit re-decomposes a chain word for digest assembly.
	byteSplit = []int{8, 8, 8, 8, 8, 8, 8, 8}
)

// Word is a 64-bit SHA-512 word held as a pair of field elements: the dense
// value and its spread form (a zero bit interleaved above every value bit).
// Words are only produced by Gadget methods, which bound the dense value below
// 2^64 and tie the two forms together through the spread tables.
type Word struct {
	dense  frontend.Variable
	spread frontend.Variable
}

// Val returns the dense 64-bit value of the word.
func (w Word) Val() frontend.Variable { return w.dense }

// piece is one dense/spread limb of a decomposed word.
type piece struct {
	width  int
	offset int
	dense  frontend.Variable
	spread frontend.Variable
}

// Gadget lays out SHA-512 constraints on top of a frontend.API. Constructing
// it is the configure phase: the gadget owns the spread lookup tables, which
// are frozen once built and shared read-only by every operation of the
// circuit.
type Gadget struct {
	api    frontend.API
	tables *spreadTables
}

// NewGadget validates the decomposition splits against the Σ/σ rotation
// amounts and prepares the spread tables.
func NewGadget(api frontend.API) (*Gadget, error) {
	for _, split := range [][]int{limbSplit, byteSplit} {
		if err := checkSplit(split); err != nil {
			return nil, err
		}
	}
	for _, spec := range []sigmaSpec{bigSigma0Spec, bigSigma1Spec, sigma0Spec, sigma1Spec} {
		if err := spec.validate(); err != nil {
			return nil, err
		}
	}
	return &Gadget{api: api, tables: newSpreadTables(api)}, nil
}

func checkSplit(widths []int) error {
	total := 0
	for _, w := range widths {
		if w < 1 || w > limbWidth {
			return fmt.Errorf("piece width %d outside [1, %d]", w, limbWidth)
		}
		total += w
	}
	if total != wordSize {
		return fmt.Errorf("piece widths sum to %d, want %d", total, wordSize)
	}
	return nil
}

// decompose splits v into little-endian pieces of the given widths, bounds
// every piece through the spread tables and enforces that the weighted sum of
// the pieces reproduces v. The returned Word carries v and its spread form.
// A v outside [0, 2^64) admits no satisfying piece assignment.
func (g *Gadget) decompose(v frontend.Variable, widths []int) ([]piece, Word) {
	ins := make([]frontend.Variable, 0, len(widths)+1)
	for _, w := range widths {
		ins = append(ins, w)
	}
	ins = append(ins, v)
	denses, err := g.api.Compiler().NewHint(pieceHint, len(widths), ins...)
	if err != nil {
		panic(err)
	}
	pieces := make([]piece, len(widths))
	offset := 0
	for i, w := range widths {
		pieces[i] = piece{
			width:  w,
			offset: offset,
			dense:  denses[i],
			spread: g.tables.lookup(w, denses[i])[0],
		}
		offset += w
	}
	dense, spread := recompose(g.api, pieces)
	g.api.AssertIsEqual(dense, v)
	return pieces, Word{dense: v, spread: spread}
}

// recompose evaluates the weighted sums of the dense and spread limbs.
func recompose(api frontend.API, pieces []piece) (dense, spread frontend.Variable) {
	dense, spread = frontend.Variable(0), frontend.Variable(0)
	for _, p := range pieces {
		dense = api.Add(dense, api.Mul(p.dense, pow2(p.offset)))
		spread = api.Add(spread, api.Mul(p.spread, pow2(2*p.offset)))
	}
	return dense, spread
}

func pow2(n int) *big.Int { return new(big.Int).Lsh(big.NewInt(1), uint(n)) }

// NewWord bounds v to 64 bits and returns it as a Word.
func (g *Gadget) NewWord(v frontend.Variable) Word {
	_, w := g.decompose(v, limbSplit)
	return w
}

// WordBytes re-decomposes w into its 8 bytes, most significant first.
func (g *Gadget) WordBytes(w Word) [8]uints.U8 {
	pieces, _ := g.decompose(w.dense, byteSplit)
	var out [8]uints.U8
	for i, p := range pieces {
		out[7-i] = uints.U8{Val: p.dense}
	}
	return out
}

// PackBlock packs 128 message bytes into 16 big-endian 64-bit words. Every
// byte is bounded through the width-8 table, so the packed words are bounded
// below 2^64 without a separate decomposition.
func (g *Gadget) PackBlock(block []uints.U8) [16]frontend.Variable {
	if len(block) != BlockSize {
		panic(fmt.Sprintf("block is %d bytes, want %d", len(block), BlockSize))
	}
	var words [16]frontend.Variable
	for i := range words {
		w := frontend.Variable(0)
		for j := 0; j < 8; j++ {
			b := block[8*i+j].Val
			g.tables.rangeCheck(b, 8)
			w = g.api.Add(w, g.api.Mul(b, pow2(8*(7-j))))
		}
		words[i] = w
	}
	return words
}

// constWord builds a compile-time constant word; no constraints are spent.
func constWord(v uint64) Word {
	return Word{dense: v, spread: spreadBig(v)}
}

// constPieces decomposes a compile-time constant.
func constPieces(v uint64, widths []int) []piece {
	pieces := make([]piece, len(widths))
	offset := 0
	for i, w := range widths {
		d := v >> offset & (uint64(1)<<w - 1)
		pieces[i] = piece{width: w, offset: offset, dense: d, spread: spreadU64(d)}
		offset += w
	}
	return pieces
}
