// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package uuid generates the time-ordered identifiers used for request ids,
anonymous visitors and artworks created without an explicit id.

Values are UUID version 7, so they sort by creation time in logs and in the
artworks primary key index.
*/
package uuid

import "github.com/google/uuid"

// New returns a UUIDv7 string, or a random UUIDv4 if the clock source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
