package correlate

import (
	"crypto/rand"
	"fmt"
)

// newRandomUUID generates a random RFC 4122 version-4 identifier.
//
// No repo in the example pack pulls in a dedicated uuid library (google/uuid,
// gofrs/uuid, ...) even though several of them mint random identifiers, so
// this stays on crypto/rand + fmt rather than inventing a new dependency.
func newRandomUUID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("correlate: failed to read random bytes: %v", err))
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
