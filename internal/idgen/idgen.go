package idgen

import (
	"github.com/google/uuid"

	"github.com/fardannozami/sparks/internal/domain"
)

type uuidGenerator struct {
	prefix string
}

// NewUUIDGenerator returns an IDGenerator that produces prefixed v7 UUIDs
// where available, falling back to v4.
func NewUUIDGenerator(prefix string) domain.IDGenerator {
	return uuidGenerator{prefix: prefix}
}

func (g uuidGenerator) NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return g.prefix + id.String()
	}
	return g.prefix + uuid.NewString()
}
