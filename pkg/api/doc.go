// Package api serves the embedding service over HTTP with gin.
//
// Routes:
//
//	GET  /                    service metadata
//	GET  /health              liveness and model state, always 200
//	POST /api/v1/embed        batch embedding, at most 100 texts
//	GET  /api/v1/model-info   static model description
//	POST /api/v1/similarity   cosine similarity of text1 and text2
//
// Errors are returned as {"detail": "..."} with 400 for invalid input, 503
// while no model is loaded and 500 when inference fails.
package api
