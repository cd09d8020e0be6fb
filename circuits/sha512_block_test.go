package circuit

import (
	cryptosha512 "crypto/sha512"
	"encoding/binary"
	"math/bits"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/std/math/uints"
	gnark_test "github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

// Native SHA-512 compression used as the reference for the block circuit.

var refIV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var refK = [80]uint64{
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

func refCompress(state [8]uint64, block []byte) [8]uint64 {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[8*i:])
	}
	for t := 16; t < 80; t++ {
		v1 := w[t-2]
		s1 := bits.RotateLeft64(v1, -19) ^ bits.RotateLeft64(v1, -61) ^ v1>>6
		v2 := w[t-15]
		s0 := bits.RotateLeft64(v2, -1) ^ bits.RotateLeft64(v2, -8) ^ v2>>7
		w[t] = s1 + w[t-7] + s0 + w[t-16]
	}
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for t := 0; t < 80; t++ {
		S1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
		ch := e&f ^ ^e&g
		t1 := h + S1 + ch + refK[t] + w[t]
		S0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
		maj := a&b ^ a&c ^ b&c
		t2 := S0 + maj
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}
	return [8]uint64{state[0] + a, state[1] + b, state[2] + c, state[3] + d,
		state[4] + e, state[5] + f, state[6] + g, state[7] + h}
}

// refPad applies the reference SHA-512 padding.
func refPad(msg []byte) []byte {
	padded := append([]byte{}, msg...)
	padded = append(padded, 0x80)
	for len(padded)%128 != 112 {
		padded = append(padded, 0)
	}
	var lenbuf [16]byte
	binary.BigEndian.PutUint64(lenbuf[8:], uint64(8*len(msg)))
	return append(padded, lenbuf[:]...)
}

func blockWitness(chainIn [8]uint64, block []byte) *Sha512BlockCircuit {
	w := &Sha512BlockCircuit{}
	for i := range w.Block {
		w.Block[i] = uints.NewU8(block[i])
	}
	chainOut := refCompress(chainIn, block)
	for i := 0; i < 8; i++ {
		w.ChainIn[i] = chainIn[i]
		w.ChainOut[i] = chainOut[i]
	}
	return w
}

func TestSha512BlockCircuit_IsSolved(t *testing.T) {
	block := refPad([]byte("single block"))
	require.Len(t, block, 128)

	assert := gnark_test.NewAssert(t)
	err := gnark_test.IsSolved(&Sha512BlockCircuit{}, blockWitness(refIV, block), ecc.BN254.ScalarField())
	assert.NoError(err, "Circuit constraints should be satisfied")
}

func TestSha512BlockCircuit_WrongChainOut(t *testing.T) {
	block := refPad([]byte("single block"))
	w := blockWitness(refIV, block)
	w.ChainOut[3] = refCompress(refIV, block)[3] ^ 1

	assert := gnark_test.NewAssert(t)
	err := gnark_test.IsSolved(&Sha512BlockCircuit{}, w, ecc.BN254.ScalarField())
	assert.Error(err, "A mismatched chaining value must be unsatisfiable")
}

// Chaining block A then block B through the circuit must agree with hashing
// A||B directly.
func TestSha512BlockCircuit_Chaining(t *testing.T) {
	msg := make([]byte, 200)
	for i := range msg {
		msg[i] = byte(i * 31)
	}
	padded := refPad(msg)
	require.Len(t, padded, 256)

	chain0 := refIV
	chain1 := refCompress(chain0, padded[:128])
	chain2 := refCompress(chain1, padded[128:])

	// the native chain agrees with the reference implementation
	want := cryptosha512.Sum512(msg)
	var got [64]byte
	for i, v := range chain2 {
		binary.BigEndian.PutUint64(got[8*i:], v)
	}
	require.Equal(t, want, got)

	// and the circuit proves each step of the chain
	assert := gnark_test.NewAssert(t)
	err := gnark_test.IsSolved(&Sha512BlockCircuit{}, blockWitness(chain0, padded[:128]), ecc.BN254.ScalarField())
	assert.NoError(err)
	err = gnark_test.IsSolved(&Sha512BlockCircuit{}, blockWitness(chain1, padded[128:]), ecc.BN254.ScalarField())
	assert.NoError(err)
}
