package checkout

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	referencePrefix = "BKG-"
	referenceLength = 6
	// referenceSpace is 36^referenceLength.
	referenceSpace = 2176782336
)

// ReferenceGenerator produces opaque booking reference IDs.
type ReferenceGenerator func() string

// NewReference returns "BKG-" followed by six upper-case base36 characters
// drawn from the random bits of a version 4 UUID.
func NewReference() string {
	id := uuid.New()
	// The first six bytes of a v4 UUID are fully random.
	var buf [8]byte
	copy(buf[2:], id[:6])
	n := binary.BigEndian.Uint64(buf[:]) % referenceSpace

	s := strings.ToUpper(strconv.FormatUint(n, 36))
	return referencePrefix + strings.Repeat("0", referenceLength-len(s)) + s
}
