// Package storage defines the key-value port the ledger persists through.
// Implementations live in the memory, file and sqlite subpackages.
package storage

import "context"

// Keys of the three blobs the ledger persists.
const (
	KeyHabits      = "habits"
	KeyWeeklyData  = "weeklyData"
	KeyDailyHabits = "dailyHabits"
)

// Ports for persistence adapters.
type (
	Reader interface {
		// Get returns the blob stored under key. ok is false when the key
		// has never been written.
		Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	}

	Writer interface {
		// Set durably stores value under key before returning.
		Set(ctx context.Context, key string, value []byte) error
	}

	Store interface {
		Reader
		Writer
	}
)
