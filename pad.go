package sha256sum

import (
	"encoding/binary"

	"github.com/zeebo/sha256sum/internal/consts"
)

// padTail writes the final partial block of a message of total length n,
// followed by padding, into buf and returns the one or two blocks used. tail
// must be shorter than a block.
func padTail(buf *[2 * consts.BlockLen]byte, tail []byte, n uint64) []byte {
	i := copy(buf[:], tail)
	buf[i] = consts.Terminator

	end := consts.BlockLen
	if i >= consts.BlockLen-consts.LenFieldLen {
		end = 2 * consts.BlockLen
	}

	binary.BigEndian.PutUint64(buf[end-consts.LenFieldLen:end], n<<3)
	return buf[:end]
}

// PaddedLen returns the length of a padded message of n bytes.
func PaddedLen(n uint64) uint64 {
	return (n + 1 + consts.LenFieldLen + consts.BlockLen - 1) &^ (consts.BlockLen - 1)
}

// Pad returns a new buffer holding msg followed by the SHA-256 padding: a
// 0x80 byte, zeros up to 56 mod 64, and the message length in bits as a
// 64 bit big-endian integer. msg is not modified.
func Pad(msg []byte) []byte {
	full := len(msg) &^ (consts.BlockLen - 1)

	var buf [2 * consts.BlockLen]byte
	tail := padTail(&buf, msg[full:], uint64(len(msg)))

	out := make([]byte, full+len(tail))
	copy(out, msg[:full])
	copy(out[full:], tail)
	return out
}
