package sha256sum

import (
	"encoding/hex"
	"unsafe"

	"github.com/zeebo/sha256sum/internal/consts"
	"github.com/zeebo/sha256sum/internal/utils"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = consts.Size

	// BlockSize is the length of a SHA-256 block in bytes.
	BlockSize = consts.BlockLen
)

// hashBlocks chains every complete block of data through state.
func hashBlocks(state *[8]uint32, data []byte) {
	var tmp [16]uint32

	for len(data) >= consts.BlockLen {
		var block *[16]uint32
		if consts.IsBigEndian && uintptr(unsafe.Pointer(&data[0]))%4 == 0 {
			block = (*[16]uint32)(unsafe.Pointer(&data[0]))
		} else {
			block = &tmp
			utils.BytesToWords((*[64]byte)(unsafe.Pointer(&data[0])), block)
		}

		compress(state, block)
		data = data[consts.BlockLen:]
	}
}

// Sum256 returns the SHA-256 digest of msg. msg is not modified.
func Sum256(msg []byte) (out [Size]byte) {
	state := consts.IV

	full := len(msg) &^ (consts.BlockLen - 1)
	hashBlocks(&state, msg[:full])

	var buf [2 * consts.BlockLen]byte
	hashBlocks(&state, padTail(&buf, msg[full:], uint64(len(msg))))

	utils.WordsToBytes(&state, out[:])
	return out
}

// Digest returns the SHA-256 digest of msg as 64 lowercase hex characters.
func Digest(msg []byte) string {
	sum := Sum256(msg)
	return hex.EncodeToString(sum[:])
}
