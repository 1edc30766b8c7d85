package main

import "github.com/google/uuid"

// newID generates a globally unique, time-sortable UUIDv7 (RFC 9562) used
// as the document identifier in the output envelope.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
