package sha512

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

type decomposeCircuit struct {
	In       frontend.Variable
	Expected [8]frontend.Variable `gnark:",public"` // big-endian bytes
}

func (c *decomposeCircuit) Define(api frontend.API) error {
	g, err := NewGadget(api)
	if err != nil {
		return err
	}
	w := g.NewWord(c.In)
	bts := g.WordBytes(w)
	for i := range bts {
		api.AssertIsEqual(bts[i].Val, c.Expected[i])
	}
	return nil
}

func TestDecomposeRoundTrip(t *testing.T) {
	assert := test.NewAssert(t)
	rng := rand.New(rand.NewSource(1))
	for _, v := range []uint64{0, 1, 0x8000000000000000, ^uint64(0), rng.Uint64(), rng.Uint64()} {
		v := v
		assert.Run(func(assert *test.Assert) {
			w := &decomposeCircuit{In: v}
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], v)
			for i := range buf {
				w.Expected[i] = buf[i]
			}
			err := test.IsSolved(&decomposeCircuit{}, w, ecc.BN254.ScalarField())
			assert.NoError(err)
		}, fmt.Sprintf("v=%#x", v))
	}
}

type addCircuit struct {
	Terms    []frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *addCircuit) Define(api frontend.API) error {
	g, err := NewGadget(api)
	if err != nil {
		return err
	}
	words := make([]Word, len(c.Terms))
	for i := range c.Terms {
		words[i] = g.NewWord(c.Terms[i])
	}
	api.AssertIsEqual(g.AddMod64(words...).Val(), c.Expected)
	return nil
}

func TestAddMod64(t *testing.T) {
	assert := test.NewAssert(t)
	rng := rand.New(rand.NewSource(2))
	for n := 2; n <= 5; n++ {
		n := n
		assert.Run(func(assert *test.Assert) {
			terms := make([]frontend.Variable, n)
			var sum uint64
			for i := range terms {
				v := rng.Uint64()
				terms[i] = v
				sum += v
			}
			err := test.IsSolved(
				&addCircuit{Terms: make([]frontend.Variable, n)},
				&addCircuit{Terms: terms, Expected: sum},
				ecc.BN254.ScalarField(),
			)
			assert.NoError(err)
		}, fmt.Sprintf("n=%d", n))
	}

	// saturated inputs exercise the maximal carry
	assert.Run(func(assert *test.Assert) {
		terms := make([]frontend.Variable, 5)
		var sum uint64
		for i := range terms {
			terms[i] = ^uint64(0)
			sum += ^uint64(0)
		}
		err := test.IsSolved(
			&addCircuit{Terms: make([]frontend.Variable, 5)},
			&addCircuit{Terms: terms, Expected: sum},
			ecc.BN254.ScalarField(),
		)
		assert.NoError(err)
	}, "n=5/max")
}

type logicCircuit struct {
	X, Y frontend.Variable
	Xor  frontend.Variable `gnark:",public"`
	And  frontend.Variable `gnark:",public"`
}

func (c *logicCircuit) Define(api frontend.API) error {
	g, err := NewGadget(api)
	if err != nil {
		return err
	}
	x, y := g.NewWord(c.X), g.NewWord(c.Y)
	api.AssertIsEqual(g.Xor(x, y).Val(), c.Xor)
	api.AssertIsEqual(g.And(x, y).Val(), c.And)
	return nil
}

func TestXorAnd(t *testing.T) {
	assert := test.NewAssert(t)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 4; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		assert.Run(func(assert *test.Assert) {
			err := test.IsSolved(
				&logicCircuit{},
				&logicCircuit{X: x, Y: y, Xor: x ^ y, And: x & y},
				ecc.BN254.ScalarField(),
			)
			assert.NoError(err)
		}, fmt.Sprintf("x=%#x", x))
	}
}

func TestSpreadInterleave(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 64; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		// sum of two spread forms splits into XOR on even and AND on odd
		// interleaved positions
		sum := new(big.Int).Add(spreadBig(x), spreadBig(y))
		want := new(big.Int).Add(spreadBig(x^y), new(big.Int).Lsh(spreadBig(x&y), 1))
		require.Zero(t, sum.Cmp(want), "x=%#x y=%#x", x, y)
	}
	for v := uint64(0); v < 1<<16; v += 257 {
		require.Equal(t, spreadU64(v), spreadBig(v).Uint64())
	}
}

func TestSigmaSplitsAligned(t *testing.T) {
	for _, spec := range []sigmaSpec{bigSigma0Spec, bigSigma1Spec, sigma0Spec, sigma1Spec} {
		require.NoError(t, spec.validate(), spec.name)
	}
	require.Error(t, sigmaSpec{name: "bad", split: limbSplit, rotations: []int{7}}.validate())
}
