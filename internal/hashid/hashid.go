// Package hashid derives the content-based identifiers that link every
// migrated entity. The legacy platform stores ids built as the MD5 digest
// of a business key laid out as a UUID; reproducing that byte layout
// exactly is what keeps cross-run joins with already-migrated records
// intact. Do not change the digest or the formatting.
package hashid

import (
	"crypto/md5"
	"strings"

	"github.com/google/uuid"
)

// Hash returns the identifier for a business key. Leading and trailing
// whitespace is stripped before hashing, matching the ids already in the
// store for keys taken straight from spreadsheet cells.
func Hash(value string) string {
	return HashRaw(strings.TrimSpace(value))
}

// HashRaw hashes the key as-is. Used for keys the caller has already
// normalized, such as zero-padded property references.
func HashRaw(value string) string {
	sum := md5.Sum([]byte(value))
	id, _ := uuid.FromBytes(sum[:])
	return id.String()
}
