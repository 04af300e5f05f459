package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenGenerator produces opaque random identifiers.
type TokenGenerator interface {
	Generate() (string, error)
}

// UUIDGenerator generates random (version 4) UUID strings. They carry no
// ordering or timestamp, which makes them suitable as session tokens.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() (string, error) {
	v4, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}

	return v4.String(), nil
}
