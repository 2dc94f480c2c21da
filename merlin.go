package lsag

import (
	"hash"

	"github.com/gtank/merlin"
)

// merlinHash buffers its input and feeds it to a fresh merlin transcript on
// every Sum, so it satisfies hash.Hash for the Merlin suite.
type merlinHash struct {
	buf []byte
}

func newMerlinHash() hash.Hash {
	return &merlinHash{}
}

func (m *merlinHash) Write(p []byte) (int, error) {
	m.buf = append(m.buf, p...)
	return len(p), nil
}

func (m *merlinHash) Sum(b []byte) []byte {
	t := merlin.NewTranscript(MERLIN_DOMAIN_TAG)
	t.AppendMessage([]byte("dom-sep"), []byte("lsag v1"))
	t.AppendMessage([]byte("items"), m.buf)
	return append(b, t.ExtractBytes([]byte("digest32"), 32)...)
}

func (m *merlinHash) Reset() { m.buf = m.buf[:0] }

func (m *merlinHash) Size() int { return 32 }

func (m *merlinHash) BlockSize() int { return 64 }
