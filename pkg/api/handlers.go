package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aleph-Alpha/embedding-service/pkg/service"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Root())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Health())
}

func (s *Server) handleModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.ModelInfo())
}

func (s *Server) handleEmbed(c *gin.Context) {
	var req service.EmbedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("Invalid request body: %w", err))
		return
	}

	resp, err := s.svc.Embed(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSimilarity(c *gin.Context) {
	text1, ok1 := c.GetQuery("text1")
	text2, ok2 := c.GetQuery("text2")
	if !ok1 || !ok2 {
		abortWithError(c, http.StatusBadRequest, errors.New("Query parameters text1 and text2 are required"))
		return
	}

	resp, err := s.svc.Similarity(c.Request.Context(), text1, text2)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
