package utils

import "github.com/zeebo/xxh3"

// U64ToBytes encodes u big-endian so fingerprints can be fed back into a hasher.
func U64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}

func FingerprintString(s string) uint64 {
	return xxh3.HashString(s)
}

// FingerprintStrings hashes every string on its own so no separator can make
// two different lists look alike.
func FingerprintStrings(tag string, ss ...string) uint64 {
	parts := make([]uint64, len(ss))
	for i, s := range ss {
		parts[i] = FingerprintString(s)
	}
	return Fingerprint(tag, parts...)
}

// Fingerprint hashes a tag followed by the fingerprints of the parts, in order.
// A node uses it to derive its own fingerprint from its children.
func Fingerprint(tag string, parts ...uint64) uint64 {
	h := xxh3.New()
	_, _ = h.WriteString(tag)
	for _, p := range parts {
		_, _ = h.Write(U64ToBytes(p))
	}
	return h.Sum64()
}
