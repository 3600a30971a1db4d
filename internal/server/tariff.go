package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
)

func (s *Server) GetTariffRate(c *gin.Context) {
	state := strings.TrimSpace(c.Param("state"))
	flag, err := tariffdomain.ParseFlagColor(c.Query("flag"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.tariffSvc.Rate(c.Request.Context(), state, flag)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SimulateTariffSavings(c *gin.Context) {
	var req tariffdomain.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.tariffSvc.Simulate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
