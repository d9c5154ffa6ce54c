package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	unmatchedRoute  = "unmatched"
)

// requestID propagates an incoming X-Request-ID or assigns a fresh UUID.
func requestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// routeLabel is the matched route template, so path parameters never blow up
// metric cardinality.
func routeLabel(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return unmatchedRoute
}

func (s *Server) tracing(c *gin.Context) {
	if s.tracer == nil {
		c.Next()
		return
	}

	carrier := make(map[string]string, len(c.Request.Header))
	for k, v := range c.Request.Header {
		if len(v) > 0 {
			carrier[strings.ToLower(k)] = v[0]
		}
	}
	ctx := s.tracer.SetCarrierOnContext(c.Request.Context(), carrier)
	ctx, span := s.tracer.StartSpan(ctx, c.Request.Method+" "+routeLabel(c))
	defer span.End()

	c.Request = c.Request.WithContext(ctx)
	c.Next()

	s.tracer.SetAttributes(span, map[string]interface{}{
		"http.method":      c.Request.Method,
		"http.route":       routeLabel(c),
		"http.status_code": c.Writer.Status(),
		"request.id":       c.GetString(requestIDKey),
	})
	if err := lastError(c); err != nil && c.Writer.Status() >= 500 {
		s.tracer.RecordErrorOnSpan(span, err)
	}
}

func (s *Server) metricsMiddleware(c *gin.Context) {
	if s.recorder == nil {
		c.Next()
		return
	}
	start := time.Now()

	c.Next()

	endpoint := routeLabel(c)
	s.recorder.IncrementRequests(endpoint, strconv.Itoa(c.Writer.Status()))
	s.recorder.RecordRequestDuration(start, endpoint)
}

func (s *Server) accessLog(c *gin.Context) {
	start := time.Now()

	c.Next()

	if s.logger == nil {
		return
	}
	status := c.Writer.Status()
	fields := map[string]interface{}{
		"method":      c.Request.Method,
		"path":        c.Request.URL.Path,
		"status":      status,
		"duration_ms": time.Since(start).Milliseconds(),
		"request_id":  c.GetString(requestIDKey),
	}
	ctx := c.Request.Context()
	switch {
	case status >= 500:
		s.logger.ErrorWithContext(ctx, "Request failed", lastError(c), fields)
	case status >= 400:
		s.logger.WarnWithContext(ctx, "Request rejected", lastError(c), fields)
	default:
		s.logger.InfoWithContext(ctx, "Request served", nil, fields)
	}
}

func lastError(c *gin.Context) error {
	if last := c.Errors.Last(); last != nil {
		return last.Err
	}
	return nil
}

// corsMiddleware allows any origin with credentials unless origins are
// restricted in Config.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", RequestIDHeader, "traceparent", "tracestate"},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowed) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = allowed
	}
	return cors.New(cfg)
}
