// Package fallback holds the immutable sample catalog served when the
// document store is unreachable. Records are loaded once at process
// start and never mutated; ids and timestamps are fixed so repeated
// degraded reads are byte-identical.
package fallback

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func oid(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic("fallback: bad sample object id " + hex)
	}
	return id
}

func ts(day int, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
}
