package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateOrderNo generates a unique order number
func GenerateOrderNo(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}

// SanitizeFilename replaces whitespace so uploaded names are URL-safe
func SanitizeFilename(name string) string {
	return strings.Join(strings.Fields(name), "-")
}
