// Package tracer wires OpenTelemetry tracing into the embedding service.
//
// The HTTP layer extracts incoming W3C trace headers with SetCarrierOnContext
// and opens a server span per request; the encoder opens a child span around
// each backend call, so a slow embedding request can be followed from the
// caller down to the inference backend.
//
//	t, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "embedding-service",
//		AppEnv:       "production",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := t.StartSpan(ctx, "embedding.encode")
//	defer span.End()
//	if err != nil {
//		t.RecordErrorOnSpan(span, err)
//	}
//
// Exporting is opt-in (TRACER_ENABLE_EXPORT=true); without it spans are still
// created so trace ids show up in logs.
package tracer
