package id

import (
	"github.com/google/uuid"
)

// Generator creates opaque, time-ordered IDs for correlating log lines.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a UUIDv7 so IDs from successive runs sort by start time.
func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return value.String(), nil
}
