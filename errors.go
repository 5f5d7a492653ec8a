package permutation

import "errors"

// ErrInvalidCapacity is returned when constructing a FeistelNetwork or
// Permutor with a capacity of zero; no permutation exists over an empty
// domain.
var ErrInvalidCapacity = errors.New("permutation: capacity must be > 0")

// ErrOutOfRange is returned when Forward, Backward, or a batch variant is
// called with an argument outside [0, N). No mutation occurs.
var ErrOutOfRange = errors.New("permutation: value out of range")

// ErrInvalidRounds is returned by WithRounds when the requested round
// count falls outside the network's documented invariant, rounds ∈ [8, 32].
var ErrInvalidRounds = errors.New("permutation: rounds must be in [8, 32]")
