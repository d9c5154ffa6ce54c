package embedding

import "errors"

var (
	// ErrDimensionMismatch is returned when the backend produces vectors of a
	// different length than the loaded artifact.
	ErrDimensionMismatch = errors.New("embedding: dimension mismatch")

	// ErrCountMismatch is returned when the backend returns a different number
	// of vectors than texts sent.
	ErrCountMismatch = errors.New("embedding: vector count mismatch")

	ErrEmptyInput = errors.New("embedding: no texts provided")

	ErrUnknownProvider = errors.New("unknown provider")
)
