package utils

import "github.com/zeebo/xxh3"

// Mix64 folds b into a. The result depends on argument order.
func Mix64(a, b uint64) uint64 {
	var buf [16]byte
	copy(buf[:8], U64ToBytes(a))
	copy(buf[8:], U64ToBytes(b))
	return xxh3.Hash(buf[:])
}
