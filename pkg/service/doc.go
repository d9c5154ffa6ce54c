// Package service is the HTTP-independent core of the embedding service.
//
// State holds the loaded Encoder behind an atomic pointer; it is populated by
// the fx start hook once the model has loaded and cleared on stop, so
// requests arriving outside that window get ErrModelNotLoaded. Service
// validates requests, makes exactly one Encoder call per request and shapes
// the responses. Failures are *Error values tagged with a Kind that the api
// package maps to 400, 503 or 500.
package service
