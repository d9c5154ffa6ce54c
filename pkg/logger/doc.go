// Package logger provides structured logging for the embedding service.
//
// It wraps Uber's zap with a small, stable API where every call takes a
// message, an optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "embedding-service",
//		EnableTracing: true,
//	})
//
//	log.Info("Model loaded", nil, map[string]interface{}{
//		"path":      "/opt/models/minilm",
//		"dimension": 384,
//	})
//
//	log.ErrorWithContext(ctx, "Embedding generation failed", err, nil)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_SERVICE_NAME=embedding   # value of the "service" field
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id in *WithContext calls
//
// # Fx
//
//	app := fx.New(
//		fx.Supply(cfg.Logger),
//		logger.FXModule,
//	)
//
// The module flushes buffered entries when the application stops.
package logger
