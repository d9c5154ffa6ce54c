package model

import "errors"

var (
	// ErrArtifactInvalid is returned when a model directory is missing or
	// does not look like a saved sentence-transformers model.
	ErrArtifactInvalid = errors.New("model: invalid artifact")

	// ErrChecksumMismatch is returned when a file does not match the
	// install manifest.
	ErrChecksumMismatch = errors.New("model: checksum mismatch")
)
