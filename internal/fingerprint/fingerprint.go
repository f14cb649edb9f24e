// Package fingerprint derives the two identity keys used for duplicate
// detection. Both are pure functions of their inputs: byte-identical
// content always produces the same digests across re-ingestion.
package fingerprint

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// fingerprintWords bounds how much of the text participates in the coarse
// key: enough to cover the boilerplate head of an ad, little enough that
// price edits in the tail do not change it.
const fingerprintWords = 20

// TextHash is the exact-content duplicate key: sha256 over lower-cased,
// whitespace-collapsed text. Empty text yields an empty hash so that
// textless posts never exact-match each other.
func TextHash(text string) string {
	if text == "" {
		return ""
	}
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Fingerprint is the coarse near-duplicate candidate key: md5 over the
// first words of the text plus the sorted phone set. Posts that share
// boilerplate but differ in trailing detail collide on purpose — this is
// a candidate key, not an identity key.
func Fingerprint(text string, phones []string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) > fingerprintWords {
		words = words[:fingerprintWords]
	}

	sorted := make([]string, len(phones))
	copy(sorted, phones)
	sort.Strings(sorted)

	data := strings.Join(words, " ") + "|" + strings.Join(sorted, ",")
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}
