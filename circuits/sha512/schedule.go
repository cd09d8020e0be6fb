package sha512

import "github.com/consensys/gnark/frontend"

// messageSchedule expands the 16 block words into the 80 schedule words:
//
//	W[t] = σ1(W[t-2]) + σ0(W[t-15]) + W[t-16] + W[t-7]  (mod 2^64)
//
// The block words arrive bounded below 2^64 and are reused as-is; every
// expanded word is bounded by its producing addition. The σ inputs are
// re-decomposed at the rotation-aligned boundaries of their recipes.
func (g *Gadget) messageSchedule(block [16]frontend.Variable) [80]frontend.Variable {
	var w [80]frontend.Variable
	copy(w[:16], block[:])
	for t := 16; t < 80; t++ {
		p1, _ := g.decompose(w[t-2], sigma1Split)
		s1 := g.sigma(p1, sigma1Spec)
		p0, _ := g.decompose(w[t-15], sigma0Split)
		s0 := g.sigma(p0, sigma0Spec)
		wt, _ := g.addMod64(limbSplit, s1.dense, s0.dense, w[t-16], w[t-7])
		w[t] = wt.dense
	}
	return w
}
