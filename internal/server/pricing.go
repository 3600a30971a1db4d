package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
)

// missingFieldsResponse keeps the flat error body the storefront expects for
// incomplete requests.
func missingFieldsResponse(c *gin.Context, fields string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": "Missing required fields: " + fields,
	})
}

func (s *Server) CalculatePricing(c *gin.Context) {
	var req pricingdomain.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req.ProductID = strings.TrimSpace(req.ProductID)
	req.DistributorCode = strings.TrimSpace(req.DistributorCode)
	if req.ProductID == "" || req.DistributorCode == "" {
		missingFieldsResponse(c, "product_id, distributor_code")
		return
	}

	resp, err := s.pricingSvc.Calculate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pricing":               resp,
		"calculation_timestamp": s.clk.Now().Format(time.RFC3339),
	})
}

func (s *Server) BatchCalculatePricing(c *gin.Context) {
	var req pricingdomain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req.DistributorCode = strings.TrimSpace(req.DistributorCode)
	if len(req.Items) == 0 || req.DistributorCode == "" {
		missingFieldsResponse(c, "items, distributor_code")
		return
	}

	if s.batchLimiter != nil && !s.batchLimiter.Allow(c.Request.Context(), req.DistributorCode) {
		s.obsMetrics.RecordRateLimit(c.Request.Context(), false)
		AbortWithError(c, ErrTooManyRequests)
		return
	}
	s.obsMetrics.RecordRateLimit(c.Request.Context(), true)

	resp, err := s.pricingSvc.CalculateBatch(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pricing":               resp.Items,
		"summary":               resp.Summary,
		"calculation_timestamp": s.clk.Now().Format(time.RFC3339),
	})
}
