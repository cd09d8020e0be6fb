package sha512

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Piece splits used by the Σ/σ recipes. Each split places a boundary at every
// rotation and shift amount of its function, so rotating is a pure
// re-weighting of spread pieces and never crosses a piece. Pieces wider than
// the 16-bit table are chunked.
var (
	// Σ0: rotr 28, 34, 39 → pieces (28, 6, 5, 25).
	abcdSplit = []int{14, 14, 3, 3, 2, 3, 14, 11}
	// Σ1: rotr 14, 18, 41 → pieces (14, 4, 23, 23).
	efghSplit = []int{14, 2, 2, 13, 10, 13, 10}
	// σ0: rotr 1, rotr 8, shr 7 → pieces (1, 6, 1, 56).
	sigma0Split = []int{1, 6, 1, 14, 14, 14, 14}
	// σ1: rotr 19, rotr 61, shr 6 → pieces (6, 13, 42, 3).
	sigma1Split = []int{6, 13, 14, 14, 14, 3}
)

// sigmaSpec describes one Σ/σ function as a decomposition split plus the
// rotations and shifts applied to it. The four instances below lower every
// bitwise function of SHA-512 to the same decompose-lookup-recombine recipe.
type sigmaSpec struct {
	name      string
	split     []int
	rotations []int
	shifts    []int
}

var (
	bigSigma0Spec = sigmaSpec{name: "Σ0", split: abcdSplit, rotations: []int{28, 34, 39}}
	bigSigma1Spec = sigmaSpec{name: "Σ1", split: efghSplit, rotations: []int{14, 18, 41}}
	sigma0Spec    = sigmaSpec{name: "σ0", split: sigma0Split, rotations: []int{1, 8}, shifts: []int{7}}
	sigma1Spec    = sigmaSpec{name: "σ1", split: sigma1Split, rotations: []int{19, 61}, shifts: []int{6}}
)

// validate checks that every rotation and shift amount lands on a piece
// boundary of the split.
func (s sigmaSpec) validate() error {
	if err := checkSplit(s.split); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	boundaries := map[int]bool{0: true}
	offset := 0
	for _, w := range s.split {
		offset += w
		boundaries[offset%wordSize] = true
	}
	for _, k := range append(append([]int{}, s.rotations...), s.shifts...) {
		if !boundaries[k] {
			return fmt.Errorf("%s: amount %d does not align with split %v", s.name, k, s.split)
		}
	}
	return nil
}

// sigma sums the rotated and shifted spread recompositions of the pieces and
// extracts the XOR of the terms from the even interleaved positions.
func (g *Gadget) sigma(pieces []piece, spec sigmaSpec) Word {
	sum := frontend.Variable(0)
	for _, r := range spec.rotations {
		sum = g.api.Add(sum, g.rotatedSpread(pieces, r))
	}
	for _, s := range spec.shifts {
		sum = g.api.Add(sum, g.shiftedSpread(pieces, s))
	}
	evn, _ := g.evenOdd(sum)
	return evn
}

// rotatedSpread recomposes the spread pieces with rotate-right-by-r weights.
func (g *Gadget) rotatedSpread(pieces []piece, r int) frontend.Variable {
	acc := frontend.Variable(0)
	for _, p := range pieces {
		shift := (p.offset - r + wordSize) % wordSize
		acc = g.api.Add(acc, g.api.Mul(p.spread, pow2(2*shift)))
	}
	return acc
}

// shiftedSpread recomposes the spread pieces with shift-right-by-s weights,
// dropping the pieces below the shift boundary.
func (g *Gadget) shiftedSpread(pieces []piece, s int) frontend.Variable {
	acc := frontend.Variable(0)
	for _, p := range pieces {
		if p.offset < s {
			continue
		}
		acc = g.api.Add(acc, g.api.Mul(p.spread, pow2(2*(p.offset-s))))
	}
	return acc
}
