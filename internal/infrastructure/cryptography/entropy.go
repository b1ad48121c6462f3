package cryptography

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// NewEntropySource returns crypto/rand when seed is empty and a deterministic
// NewSeededReader stream otherwise.
func NewEntropySource(seed, label string) io.Reader {
	if seed == "" {
		return rand.Reader
	}
	return NewSeededReader([]byte(seed), label)
}

// segmentSize is the output limit of a single HKDF-SHA256 expansion (255 hash blocks)
const segmentSize = 255 * sha256.Size

// seededReader expands an HKDF-SHA256 pseudorandom key into an endless byte stream.
// The stream is cut into segments of segmentSize bytes, each expanded with the label
// and its segment number as info.
type seededReader struct {
	mu      sync.Mutex
	prk     []byte
	label   string
	segment uint64
	used    int
	stream  io.Reader
}

// NewSeededReader returns a reproducible reader: equal seed and label give equal bytes,
// independent of how reads are chunked. It is safe for concurrent use. Not for real key material.
func NewSeededReader(seed []byte, label string) io.Reader {
	return &seededReader{
		prk:   hkdf.Extract(sha256.New, seed, nil),
		label: label,
	}
}

func (r *seededReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for n < len(p) {
		if r.stream == nil || r.used == segmentSize {
			r.stream = hkdf.Expand(sha256.New, r.prk, r.info())
			r.segment++
			r.used = 0
		}

		chunk := min(len(p)-n, segmentSize-r.used)
		if _, err := io.ReadFull(r.stream, p[n:n+chunk]); err != nil {
			return n, fmt.Errorf("failed to expand seed: %w", err)
		}
		n += chunk
		r.used += chunk
	}
	return n, nil
}

func (r *seededReader) info() []byte {
	info := make([]byte, 0, len(r.label)+8)
	info = append(info, r.label...)
	return binary.BigEndian.AppendUint64(info, r.segment)
}
