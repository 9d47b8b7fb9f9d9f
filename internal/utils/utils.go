package utils

// BytesToWord combines four bytes into a word, most significant byte first.
func BytesToWord(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// WordToBytes is the inverse of BytesToWord.
func WordToBytes(w uint32) [4]byte {
	return [4]byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

// BytesToWords loads the 16 big-endian words of one block.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	words[0] = BytesToWord(bytes[0], bytes[1], bytes[2], bytes[3])
	words[1] = BytesToWord(bytes[4], bytes[5], bytes[6], bytes[7])
	words[2] = BytesToWord(bytes[8], bytes[9], bytes[10], bytes[11])
	words[3] = BytesToWord(bytes[12], bytes[13], bytes[14], bytes[15])
	words[4] = BytesToWord(bytes[16], bytes[17], bytes[18], bytes[19])
	words[5] = BytesToWord(bytes[20], bytes[21], bytes[22], bytes[23])
	words[6] = BytesToWord(bytes[24], bytes[25], bytes[26], bytes[27])
	words[7] = BytesToWord(bytes[28], bytes[29], bytes[30], bytes[31])
	words[8] = BytesToWord(bytes[32], bytes[33], bytes[34], bytes[35])
	words[9] = BytesToWord(bytes[36], bytes[37], bytes[38], bytes[39])
	words[10] = BytesToWord(bytes[40], bytes[41], bytes[42], bytes[43])
	words[11] = BytesToWord(bytes[44], bytes[45], bytes[46], bytes[47])
	words[12] = BytesToWord(bytes[48], bytes[49], bytes[50], bytes[51])
	words[13] = BytesToWord(bytes[52], bytes[53], bytes[54], bytes[55])
	words[14] = BytesToWord(bytes[56], bytes[57], bytes[58], bytes[59])
	words[15] = BytesToWord(bytes[60], bytes[61], bytes[62], bytes[63])
}

// WordsToBytes writes the hash state into the first 32 bytes of out.
func WordsToBytes(words *[8]uint32, out []byte) {
	_ = out[31]
	for i, w := range words {
		b := WordToBytes(w)
		copy(out[4*i:], b[:])
	}
}
