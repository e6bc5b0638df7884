package repository

import "context"

// CounterRepository hands out per-prefix, per-day sequence values.
// Next must be called inside a transaction: the counter row is the
// serialization point for concurrent ticket-number generation.
type CounterRepository interface {
	// Next atomically increments and returns the counter for prefix+day
	Next(ctx context.Context, prefix, day string) (int, error)
}
