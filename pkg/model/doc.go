// Package model describes the all-MiniLM-L6-v2 sentence-transformers artifact:
// its static properties (name, 384 dimensions, 256 token limit), the file set
// a saved model directory consists of, the installer manifest, and Open, which
// validates a directory before the service starts serving from it.
package model
