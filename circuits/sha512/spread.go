package sha512

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/lookup/logderivlookup"
)

// spreadTables holds one dense-to-spread lookup table per limb width. Looking
// up index d in the width-w table simultaneously bounds d to [0, 2^w) and
// fixes its spread form, so no separate width tag is needed. Tables are built
// lazily during configuration and are immutable afterwards.
type spreadTables struct {
	api     frontend.API
	byWidth map[int]logderivlookup.Table
}

func newSpreadTables(api frontend.API) *spreadTables {
	return &spreadTables{api: api, byWidth: make(map[int]logderivlookup.Table)}
}

func (t *spreadTables) table(width int) logderivlookup.Table {
	if tbl, ok := t.byWidth[width]; ok {
		return tbl
	}
	tbl := logderivlookup.New(t.api)
	for v := uint64(0); v < 1<<width; v++ {
		tbl.Insert(spreadU64(v))
	}
	t.byWidth[width] = tbl
	return tbl
}

// lookup returns the spread counterpart of every dense value, bounding each to
// width bits.
func (t *spreadTables) lookup(width int, dense ...frontend.Variable) []frontend.Variable {
	return t.table(width).Lookup(dense...)
}

// rangeCheck bounds v to [0, 2^width), discarding the spread output.
func (t *spreadTables) rangeCheck(v frontend.Variable, width int) {
	_ = t.table(width).Lookup(v)
}

// spreadU64 interleaves a zero bit above every bit of v. The result fits in a
// uint64 for inputs below 2^32.
func spreadU64(v uint64) uint64 {
	var s uint64
	for i := 0; v != 0; i++ {
		s |= (v & 1) << (2 * i)
		v >>= 1
	}
	return s
}

// spreadBig is spreadU64 over the full 64-bit input range.
func spreadBig(v uint64) *big.Int {
	s := new(big.Int)
	for i := 0; i < 64; i++ {
		if v>>i&1 == 1 {
			s.SetBit(s, 2*i, 1)
		}
	}
	return s
}
