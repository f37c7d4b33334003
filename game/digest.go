package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"sort"
)

// digestDomain is the domain-separation prefix for game digests. The
// version suffix changes if the encoding ever does, so digests from
// different encodings can never collide.
const digestDomain = "pregame/game/v1"

// Digest is the content-addressed identity of a game: a SHA-256 over the
// recursive structure with each option family treated as a multiset.
type Digest [sha256.Size]byte

// String returns the lowercase hex encoding.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Digest returns the content-addressed identity of g. Reordering options
// on either side, at any depth, yields the same digest, so equal digests
// identify games that are relabellings of one another (up to SHA-256
// collision). Digests say nothing about game value: Star and Up compare
// equal to no integer yet all three digest differently.
func (g *Game) Digest() Digest { return g.digest }

// computeDigest hashes domain || 0x00 || family(left) || family(right),
// where family is an 8-byte big-endian count followed by the child digests
// in sorted byte order. Fixed-width fields keep the encoding unambiguous.
func computeDigest(left, right []*Game) Digest {
	h := sha256.New()
	h.Write([]byte(digestDomain))
	h.Write([]byte{0x00})
	writeFamily(h, left)
	writeFamily(h, right)
	var d Digest
	h.Sum(d[:0])
	return d
}

func writeFamily(h hash.Hash, opts []*Game) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(opts)))
	h.Write(n[:])
	sorted := make([]Digest, len(opts))
	for i, o := range opts {
		sorted[i] = o.digest
	}
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})
	for _, d := range sorted {
		h.Write(d[:])
	}
}
