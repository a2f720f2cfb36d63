package trip

import "github.com/google/uuid"

// IDGenerator produces identifiers unique within the process lifetime.
// One generator instance is injected into every store so all entity kinds
// share a single strategy; identifiers are never regenerated on edit.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns the production IDGenerator, backed by random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.New().String()
}
