package permutation

import "encoding/binary"

// KeySize is the width in bytes of a Key.
const KeySize = 32

// Key is a 256-bit opaque key for a FeistelNetwork. It is immutable once
// constructed.
type Key [KeySize]byte

// NewKey returns the key formed by the given 32 bytes.
func NewKey(raw [KeySize]byte) Key {
	return Key(raw)
}

// NewKeyFromUint64 expands a 64-bit user key into a 256-bit Key by placing
// it big-endian in the first 8 bytes and zero-filling the remaining 24.
func NewKeyFromUint64(k uint64) Key {
	var key Key
	binary.BigEndian.PutUint64(key[:8], k)
	return key
}

// Bytes returns the key's 32 raw bytes.
func (k Key) Bytes() [KeySize]byte {
	return [KeySize]byte(k)
}
