package sha512

import "github.com/consensys/gnark/frontend"

// _K holds the SHA-512 round constants.
var _K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// _IV holds the SHA-512 initialization constants.
var _IV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// State is the 8-word SHA-512 chaining state. The a and e words keep their
// Σ0/Σ1 piece decompositions so the round function never re-splits them.
type State struct {
	words   [8]Word
	aPieces []piece
	ePieces []piece
}

// Words returns the 8 chaining words a..h.
func (s State) Words() [8]Word { return s.words }

// IV returns the fixed SHA-512 initial state as compile-time constants.
func (g *Gadget) IV() State {
	var s State
	for i, v := range _IV {
		s.words[i] = constWord(v)
	}
	s.aPieces = constPieces(_IV[0], abcdSplit)
	s.ePieces = constPieces(_IV[4], efghSplit)
	return s
}

// NewState bounds 8 claimed 64-bit words and prepares them as a chaining
// state, splitting a and e at the Σ boundaries.
func (g *Gadget) NewState(vals [8]frontend.Variable) State {
	var s State
	for i, v := range vals {
		switch i {
		case 0:
			s.aPieces, s.words[0] = g.decompose(v, abcdSplit)
		case 4:
			s.ePieces, s.words[4] = g.decompose(v, efghSplit)
		default:
			_, s.words[i] = g.decompose(v, limbSplit)
		}
	}
	return s
}

// Compress runs the 80-round compression function on one 16-word block and
// applies the Merkle-Damgard feed-forward, returning the next chaining state.
func (g *Gadget) Compress(in State, block [16]frontend.Variable) State {
	w := g.messageSchedule(block)
	s := in
	for t := 0; t < 80; t++ {
		s = g.round(s, _K[t], w[t])
	}
	return g.feedForward(in, s)
}

// round applies one state transition:
//
//	T1 = h + Σ1(e) + Ch(e,f,g) + K[t] + W[t]
//	T2 = Σ0(a) + Maj(a,b,c)
//	state' = (T1+T2, a, b, c, d+T1, e, f, g)
//
// Each output word lives in fresh variables; the shifted-down words reuse the
// previous round's variables, which is the copy constraint between rounds.
func (g *Gadget) round(s State, k uint64, w frontend.Variable) State {
	a, b, c, d := s.words[0], s.words[1], s.words[2], s.words[3]
	e, f, gw, h := s.words[4], s.words[5], s.words[6], s.words[7]

	sigma1 := g.sigma(s.ePieces, bigSigma1Spec)
	choice := g.ch(e, f, gw)
	t1, _ := g.addMod64(limbSplit, h.dense, sigma1.dense, choice.dense, k, w)

	sigma0 := g.sigma(s.aPieces, bigSigma0Spec)
	major := g.maj(a, b, c)
	t2, _ := g.addMod64(limbSplit, sigma0.dense, major.dense)

	aw, ap := g.addMod64(abcdSplit, t1.dense, t2.dense)
	ew, ep := g.addMod64(efghSplit, d.dense, t1.dense)

	return State{
		words:   [8]Word{aw, a, b, c, ew, e, f, gw},
		aPieces: ap,
		ePieces: ep,
	}
}

// feedForward adds the block's input chaining value into its final round
// state. The sums are split so the result is directly a valid input state for
// the next block.
func (g *Gadget) feedForward(in, out State) State {
	var next State
	for i := 0; i < 8; i++ {
		split := limbSplit
		switch i {
		case 0:
			split = abcdSplit
		case 4:
			split = efghSplit
		}
		w, pieces := g.addMod64(split, in.words[i].dense, out.words[i].dense)
		next.words[i] = w
		switch i {
		case 0:
			next.aPieces = pieces
		case 4:
			next.ePieces = pieces
		}
	}
	return next
}
