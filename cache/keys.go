package cache

import "github.com/Konsultn-Engineering/sqlb/utils"

// Key combines a statement fingerprint with the dialect it is rendered for.
// The same tree renders differently per dialect, so both take part in the key.
func Key(fingerprint uint64, dialect string) uint64 {
	return utils.Mix64(fingerprint, utils.FingerprintString(dialect))
}
