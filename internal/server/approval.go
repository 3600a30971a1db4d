package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
)

func (s *Server) EvaluateApproval(c *gin.Context) {
	var req approvaldomain.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.approvalSvc.Evaluate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
