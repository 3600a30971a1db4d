package server

import (
	"net/http"
	"testing"

	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePricing_OK(t *testing.T) {
	srv, svcs := newTestServer(t)
	svcs.pricing.result = &pricingdomain.Result{
		ProductID:       "panel-550w",
		DistributorCode: "solmax-sp",
		FinalUnitPrice:  855,
		FinalLinePrice:  42750,
		Quantity:        50,
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/pricing/calculate", map[string]any{
		"product_id":       "panel-550w",
		"distributor_code": "solmax-sp",
		"quantity":         50,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "pricing")
	assert.Contains(t, body, "calculation_timestamp")
	assert.Equal(t, 1, svcs.pricing.calculateCalls)
}

func TestCalculatePricing_MissingRequiredFields(t *testing.T) {
	srv, svcs := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/pricing/calculate", map[string]any{
		"distributor_code": "solmax-sp",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: product_id, distributor_code", body["error"])
	assert.Zero(t, svcs.pricing.calculateCalls)
}

func TestCalculatePricing_NotFoundMapsTo404(t *testing.T) {
	srv, svcs := newTestServer(t)
	svcs.pricing.err = priceprofiledomain.ErrNotFound

	rec := doJSON(t, srv, http.MethodPost, "/api/pricing/calculate", map[string]any{
		"product_id":       "unlisted",
		"distributor_code": "solmax-sp",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalculatePricing_ValidationErrorMapsTo400(t *testing.T) {
	srv, svcs := newTestServer(t)
	svcs.pricing.err = distributordomain.ErrInvalidTier

	rec := doJSON(t, srv, http.MethodPost, "/api/pricing/calculate", map[string]any{
		"product_id":       "panel-550w",
		"distributor_code": "solmax-sp",
		"distributor_tier": "diamond",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchCalculatePricing_OK(t *testing.T) {
	srv, svcs := newTestServer(t)
	svcs.pricing.batchResult = &pricingdomain.BatchResult{
		Items: []pricingdomain.Result{{ProductID: "panel-550w"}},
		Summary: pricingdomain.BatchSummary{
			TotalQuantity: 50,
			Subtotal:      42750,
		},
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/pricing/batch-calculate", map[string]any{
		"distributor_code": "solmax-sp",
		"items": []map[string]any{
			{"product_id": "panel-550w", "quantity": 50},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "pricing")
	assert.Contains(t, body, "summary")
	assert.Equal(t, 1, svcs.pricing.batchCalls)
}

func TestBatchCalculatePricing_MissingFields(t *testing.T) {
	srv, svcs := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/pricing/batch-calculate", map[string]any{
		"distributor_code": "solmax-sp",
		"items":            []map[string]any{},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: items, distributor_code", body["error"])
	assert.Zero(t, svcs.pricing.batchCalls)
}

func TestCalculatePricing_MalformedJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/pricing/calculate", "not-an-object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
