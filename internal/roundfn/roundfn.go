// Package roundfn implements the keyed round function shared by every
// FeistelNetwork: a fast, non-cryptographic pseudo-random function from
// (key, round, half-block) to a half-block-sized output.
package roundfn

import (
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// Evaluate computes f(key, round, h) for a single Feistel round.
//
// It feeds a fresh xxhash digest, in order: the 32-byte key, h encoded
// as a fixed-width little-endian byte sequence of halfBytes length, the
// single round byte, then the 32-byte key again (a repeated-key suffix
// retained from the construction this was ported from, meant to defeat
// length-extension-style collisions in weak hashes). The 64-bit digest is
// then masked with rightMask to land back in the half-block domain.
//
// For half-block widths wider than 64 bits, only the low 64 bits of the
// result carry any entropy from the hash; the construction stays a valid
// deterministic function (and therefore the Feistel network stays a valid
// bijection) but mixing quality degrades for very large domains. This
// construction makes no uniform-distribution promises beyond bijectivity.
func Evaluate(key [32]byte, round uint8, h *big.Int, halfBytes int, rightMask *big.Int) *big.Int {
	d := xxhash.New()
	_, _ = d.Write(key[:])

	buf := make([]byte, halfBytes)
	h.FillBytes(buf)
	reverse(buf)
	_, _ = d.Write(buf)

	_, _ = d.Write([]byte{round})
	_, _ = d.Write(key[:])

	out := new(big.Int).SetUint64(d.Sum64())
	return out.And(out, rightMask)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
