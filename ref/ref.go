// Package ref is a direct, unoptimized SHA-256 used to check the fast paths
// in the parent package.
package ref

import (
	"github.com/zeebo/sha256sum/internal/consts"
	"github.com/zeebo/sha256sum/internal/utils"
)

func rotr(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

// Expand computes the message schedule for one block.
func Expand(block *[16]uint32, w *[64]uint32) {
	for j := 0; j < 16; j++ {
		w[j] = block[j]
	}
	for j := 16; j < 64; j++ {
		s0 := rotr(w[j-15], 7) ^ rotr(w[j-15], 18) ^ (w[j-15] >> 3)
		s1 := rotr(w[j-2], 17) ^ rotr(w[j-2], 19) ^ (w[j-2] >> 10)
		w[j] = w[j-16] + s0 + w[j-7] + s1
	}
}

// Compress folds one block into state.
func Compress(state *[8]uint32, block *[16]uint32) {
	var w [64]uint32
	Expand(block, &w)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for j := 0; j < 64; j++ {
		s1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + consts.K[j] + w[j]
		s0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// Pad appends the terminator, zero fill and the 64 bit big-endian bit length.
func Pad(msg []byte) []byte {
	out := append([]byte(nil), msg...)
	out = append(out, consts.Terminator)
	for len(out)%consts.BlockLen != consts.BlockLen-consts.LenFieldLen {
		out = append(out, 0)
	}
	bits := uint64(len(msg)) * 8
	for i := 7; i >= 0; i-- {
		out = append(out, byte(bits>>(8*uint(i))))
	}
	return out
}

// Sum256 returns the SHA-256 digest of msg.
func Sum256(msg []byte) (out [consts.Size]byte) {
	state := consts.IV
	padded := Pad(msg)

	var block [16]uint32
	for i := 0; i < len(padded); i += consts.BlockLen {
		for j := range block {
			p := padded[i+4*j:]
			block[j] = utils.BytesToWord(p[0], p[1], p[2], p[3])
		}
		Compress(&state, &block)
	}

	utils.WordsToBytes(&state, out[:])
	return out
}
