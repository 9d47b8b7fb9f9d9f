// Package sha256sum computes SHA-256 digests of complete in-memory messages.
package sha256sum

import (
	"bytes"
	"io"
)

// Hasher is a hash.Hash for SHA-256. Written data is buffered in memory and
// digested in one pass when Sum is called.
type Hasher struct {
	buf bytes.Buffer
}

// New returns a new, empty Hasher.
func New() *Hasher {
	return new(Hasher)
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.buf.Write(p)
}

// WriteString is like Write but for strings. It never returns an error.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.buf.WriteString(s)
}

// ReadFrom buffers r until EOF. Only errors from r are returned.
func (h *Hasher) ReadFrom(r io.Reader) (int64, error) {
	return h.buf.ReadFrom(r)
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.buf.Reset()
}

// Len returns the number of bytes written since the last Reset.
func (h *Hasher) Len() int {
	return h.buf.Len()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the data written so far to b and returns it. It does not change the
// underlying state.
func (h *Hasher) Sum(b []byte) []byte {
	sum := Sum256(h.buf.Bytes())
	return append(b, sum[:]...)
}

// Digest returns the hex encoded digest of the data written so far.
func (h *Hasher) Digest() string {
	return Digest(h.buf.Bytes())
}

// Clone returns a new Hasher holding a copy of the data written so far.
func (h *Hasher) Clone() *Hasher {
	c := New()
	c.buf.Write(h.buf.Bytes())
	return c
}
