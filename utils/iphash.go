package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashIP returns the first 16 hex chars of the sha256 of ip. Enough context
// for abuse rate-limiting, not reversible to an address.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])[:16]
}
