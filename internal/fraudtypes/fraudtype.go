// Package fraudtypes implements the fraud type registry: the set of known
// fraud categories consulted by the classifier. It provides types, a
// PostgreSQL repository, an in-memory registry, YAML seed data, and HTTP
// handlers.
package fraudtypes

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FraudType is a registered fraud category.
type FraudType struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterCommand carries the data needed to register a fraud type.
type RegisterCommand struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// NormalizeName upper-cases name and collapses interior whitespace.
// Registered names are always stored normalized.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

func (c RegisterCommand) normalize() (RegisterCommand, error) {
	c.Name = NormalizeName(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if c.Name == "" {
		return c, ErrInvalidName
	}
	return c, nil
}
