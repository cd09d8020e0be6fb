// Package sha512 implements SHA-512 as a gnark circuit gadget.
//
// Sixty-four-bit words are carried as dense/spread pairs of field elements.
// Every bitwise operation of the compression function is lowered to a
// decompose-lookup-recombine recipe against per-width spread tables: XOR is
// read from the even interleaved positions of a spread sum and AND from the
// odd ones, while rotations re-weight spread pieces split at rotation-aligned
// boundaries. Additions modulo 2^64 cut an explicitly range-checked carry.
//
// New returns a hasher over bytes; NewGadget exposes the block-level API
// (state handling, compression, tagged Xor/And/AddMod64 operations) for
// enclosing circuits that manage their own padding and chaining.
package sha512

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash"
	"github.com/consensys/gnark/std/math/uints"
)

const (
	// BlockSize is the SHA-512 block size in bytes.
	BlockSize = 128
	// Size is the SHA-512 digest size in bytes.
	Size = 64
)

// Digest accumulates message bytes and hashes them through the gadget. The
// message length is fixed per compiled circuit; padding is applied when Sum
// is called.
type Digest struct {
	api frontend.API
	g   *Gadget
	in  []uints.U8
}

var _ hash.BinaryHasher = (*Digest)(nil)

func New(api frontend.API) (*Digest, error) {
	g, err := NewGadget(api)
	if err != nil {
		return nil, fmt.Errorf("configuring gadget: %w", err)
	}
	return &Digest{api: api, g: g}, nil
}

// Write appends data to the message.
func (d *Digest) Write(data []uints.U8) {
	d.in = append(d.in, data...)
}

// Sum pads the accumulated message per SHA-512 rules, chains the compression
// function over all blocks starting from the fixed IV and returns the 64
// digest bytes, most significant word first.
func (d *Digest) Sum() []uints.U8 {
	padded := d.padded(len(d.in))
	state := d.g.IV()
	for i := 0; i < len(padded)/BlockSize; i++ {
		state = d.g.Compress(state, d.g.PackBlock(padded[i*BlockSize:(i+1)*BlockSize]))
	}
	out := make([]uints.U8, 0, Size)
	for _, w := range state.Words() {
		b := d.g.WordBytes(w)
		out = append(out, b[:]...)
	}
	return out
}

// Reset clears the accumulated message.
func (d *Digest) Reset() { d.in = nil }

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return Size }

// padded appends the 0x80 marker, the zero run and the 128-bit big-endian bit
// length, closing the message at a block boundary. The reference padding puts
// the bit length in the low 8 of the 16 length bytes; the high 8 stay zero
// for any message a circuit can hold.
func (d *Digest) padded(bytesLen int) []uints.U8 {
	zeroPadLen := 111 - bytesLen%BlockSize
	if zeroPadLen < 0 {
		zeroPadLen += BlockSize
	}
	buf := make([]uints.U8, 0, bytesLen+1+zeroPadLen+16)
	buf = append(buf, d.in...)
	buf = append(buf, uints.NewU8(0x80))
	buf = append(buf, uints.NewU8Array(make([]uint8, zeroPadLen))...)
	lenbuf := make([]uint8, 16)
	binary.BigEndian.PutUint64(lenbuf[8:], uint64(8*bytesLen))
	buf = append(buf, uints.NewU8Array(lenbuf)...)
	return buf
}
