package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	financingdomain "github.com/solvolt/heliora/internal/financing/domain"
)

func (s *Server) SimulateFinancing(c *gin.Context) {
	var req financingdomain.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.financingSvc.Simulate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
