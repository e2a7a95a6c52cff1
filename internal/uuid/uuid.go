// Package uuid generates the identifiers used for rows, sessions and request tracing.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string. Row ids are generated here so
// that inserts stay roughly sequential in the primary key index.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// Random returns a UUIDv4 string for values that must not leak creation time,
// such as OAuth state nonces.
func Random() string {
	return googleuuid.NewString()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
