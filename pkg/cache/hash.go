package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// hashKey builds a namespaced cache key from the identifying parts of an
// artifact. Seeds, config hashes and pixel dimensions all flatten
// through fmt, separated by NUL so adjacent parts cannot collide.
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%v\x00", p)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash fingerprints data as a 64-character hex SHA-256 digest. Used for
// configuration documents and for spreading file cache entries over
// subdirectories.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
