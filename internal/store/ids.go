package store

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// newID builds a prefixed short identifier, e.g. "tenant-4f9a21c".
// Tenant, staff and expense prefixes differ so an id alone names its
// collection.
func newID(prefix string) string {
	compact := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + compact[:7]
}

// newOrderCode builds the short human-readable order code handed to the
// customer, e.g. "PC-4821".
func newOrderCode() string {
	return fmt.Sprintf("PC-%d", 1000+rand.Intn(9000))
}
