// Package permutation builds a keyed pseudo-random permutation (PRP) over
// the integer range [0, N) and exposes it as a restartable, constant-space
// iterator plus a pair of invertible index maps.
//
// Overview
//   - Key: a 256-bit opaque key. A 64-bit key expands into it by placing
//     the 64 bits big-endian in the first 8 bytes and zero-filling the rest.
//   - FeistelNetwork: a balanced Feistel cipher over a power-of-two domain
//     [0, 2^w) with 2^w > N, where w is the bit length of N rounded up to
//     an even number, built from a keyed,
//     non-cryptographic round function. Permute and Invert are mutual
//     inverse bijections on that domain.
//   - Permutor: wraps a FeistelNetwork with a user-visible capacity N and
//     applies cycle-walking (repeated application of Permute/Invert until
//     the result lands back in [0, N)) to produce a bijection on [0, N)
//     itself, plus a stateful iterator over it.
//
// A naive shuffle (Fisher-Yates) needs O(N) memory and can't answer "what
// is the k-th element" in O(1). This construction needs O(1) state plus
// O(rounds) work per element, independent of N.
//
// Non-goals: this is not a cryptographic primitive. The round function is a
// fast hash chosen for speed, not secrecy, and the exact output sequence is
// not guaranteed stable across implementations of the round function.
package permutation
