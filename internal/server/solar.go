package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	solardomain "github.com/solvolt/heliora/internal/solar/domain"
)

func (s *Server) EstimateSolarGeneration(c *gin.Context) {
	var req solardomain.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.solarSvc.Estimate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RecommendSolarSystem(c *gin.Context) {
	var req solardomain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.solarSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
