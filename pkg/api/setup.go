package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aleph-Alpha/embedding-service/pkg/tracer"
)

// Server is the public HTTP surface of the embedding service.
type Server struct {
	cfg      Config
	svc      EmbeddingService
	engine   *gin.Engine
	http     *http.Server
	logger   Logger
	tracer   *tracer.Tracer
	recorder RequestRecorder
}

// NewServer builds the gin router. Nothing listens until Start is called
// (see RegisterServerLifecycle).
func NewServer(cfg Config, svc EmbeddingService) *Server {
	cfg.applyDefaults()
	gin.SetMode(cfg.Mode)

	s := &Server{cfg: cfg, svc: svc}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.Recovery(), requestID, s.tracing, s.metricsMiddleware, s.accessLog, corsMiddleware(cfg.AllowedOrigins))

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)

	v1 := engine.Group("/api/v1")
	v1.POST("/embed", s.handleEmbed)
	v1.GET("/model-info", s.handleModelInfo)
	v1.POST("/similarity", s.handleSimilarity)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
	})

	s.engine = engine
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

func (s *Server) WithLogger(l Logger) *Server {
	s.logger = l
	return s
}

func (s *Server) WithTracer(t *tracer.Tracer) *Server {
	s.tracer = t
	return s
}

func (s *Server) WithRecorder(r RequestRecorder) *Server {
	s.recorder = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Addr() string {
	return s.http.Addr
}
