package sha256sum

import (
	"math/bits"

	"github.com/zeebo/sha256sum/internal/consts"
)

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

func expand(block *[16]uint32, w *[64]uint32) {
	copy(w[:16], block[:])
	for j := 16; j < 64; j++ {
		w[j] = w[j-16] + sigma0(w[j-15]) + w[j-7] + sigma1(w[j-2])
	}
}

// round returns the new e and a registers. The caller rotates names
// instead of moving the other six values.
func round(a, b, c, d, e, f, g, h, kw uint32) (uint32, uint32) {
	t1 := h +
		(bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
		((e & f) ^ (^e & g)) +
		kw
	t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
		((a & b) ^ (a & c) ^ (b & c))
	return d + t1, t1 + t2
}

func compress(state *[8]uint32, block *[16]uint32) {
	var w [64]uint32
	expand(block, &w)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]
	k := &consts.K

	for i := 0; i < 64; i += 8 {
		d, h = round(a, b, c, d, e, f, g, h, k[i+0]+w[i+0])
		c, g = round(h, a, b, c, d, e, f, g, k[i+1]+w[i+1])
		b, f = round(g, h, a, b, c, d, e, f, k[i+2]+w[i+2])
		a, e = round(f, g, h, a, b, c, d, e, k[i+3]+w[i+3])
		h, d = round(e, f, g, h, a, b, c, d, k[i+4]+w[i+4])
		g, c = round(d, e, f, g, h, a, b, c, k[i+5]+w[i+5])
		f, b = round(c, d, e, f, g, h, a, b, k[i+6]+w[i+6])
		e, a = round(b, c, d, e, f, g, h, a, k[i+7]+w[i+7])
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
