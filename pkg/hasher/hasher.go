// Package hasher computes content fingerprints for asset files and derives
// the cache-busting filenames that embed them.
package hasher

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// ContentHash returns the lowercase hex-encoded MD5 digest of the raw
// file bytes. The digest is computed over the exact byte sequence, never
// a decoded text representation, so binary payloads hash correctly.
//
// MD5 is a deliberate choice: the fingerprint is for cache-busting, not
// security. A collision between different contents would serve stale
// bytes for one asset; that risk is accepted and not detected.
func ContentHash(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// HashedName returns the cache-busting filename for the given original
// file name and content: "base.<digest>.ext", splitting at the last dot.
// Names without an extension degrade to "base.<digest>".
//
// Identical bytes always yield the identical name, so re-running over
// unchanged content is idempotent.
func HashedName(data []byte, originalName string) string {
	digest := ContentHash(data)

	if idx := strings.LastIndex(originalName, "."); idx >= 0 {
		base, ext := originalName[:idx], originalName[idx+1:]
		return base + "." + digest + "." + ext
	}
	return originalName + "." + digest
}
