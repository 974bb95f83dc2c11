package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque identifiers for newly created posts.
// UUIDv7 is preferred because it sorts roughly by creation time, so
// identifier order and listing order mostly agree.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
