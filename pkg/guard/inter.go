package guard

import "time"

// Ordered is the type set accepted by the comparison guards: every type whose
// values support the built-in ordering operators. Floats follow IEEE-754, so
// an unordered value (NaN) fails the ordering guards instead of panicking.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

type ValueProvider[T any] interface {
	// Value returns the guarded value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that carry a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if a guard failed
	Err() error
	// IsSuccess returns true if every guard passed
	IsSuccess() bool
}
