package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	"github.com/solvolt/heliora/internal/clock"
	"github.com/solvolt/heliora/internal/config"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	financingdomain "github.com/solvolt/heliora/internal/financing/domain"
	"github.com/solvolt/heliora/internal/observability"
	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
	solardomain "github.com/solvolt/heliora/internal/solar/domain"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	"go.uber.org/zap"
)

type fakePricingService struct {
	calculateCalls int
	batchCalls     int
	result         *pricingdomain.Result
	batchResult    *pricingdomain.BatchResult
	err            error
}

func (f *fakePricingService) Calculate(ctx context.Context, req pricingdomain.CalculateRequest) (*pricingdomain.Result, error) {
	f.calculateCalls++
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakePricingService) CalculateBatch(ctx context.Context, req pricingdomain.BatchRequest) (*pricingdomain.BatchResult, error) {
	f.batchCalls++
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.batchResult, nil
}

type fakeDistributorService struct {
	response *distributordomain.Response
	list     []distributordomain.Response
	err      error
}

func (f *fakeDistributorService) Get(ctx context.Context, code string) (*distributordomain.Response, error) {
	_ = ctx
	_ = code
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeDistributorService) List(ctx context.Context) ([]distributordomain.Response, error) {
	_ = ctx
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

type fakeTariffService struct {
	rate   *tariffdomain.RateResponse
	result *tariffdomain.SimulationResult
	err    error
}

func (f *fakeTariffService) Rate(ctx context.Context, state string, flag tariffdomain.FlagColor) (*tariffdomain.RateResponse, error) {
	_ = ctx
	if f.err != nil {
		return nil, f.err
	}
	return f.rate, nil
}

func (f *fakeTariffService) Simulate(ctx context.Context, req tariffdomain.SimulationRequest) (*tariffdomain.SimulationResult, error) {
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeSolarService struct {
	estimate  *solardomain.EstimateResult
	recommend *solardomain.Recommendation
	err       error
}

func (f *fakeSolarService) Estimate(ctx context.Context, req solardomain.EstimateRequest) (*solardomain.EstimateResult, error) {
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.estimate, nil
}

func (f *fakeSolarService) Recommend(ctx context.Context, req solardomain.RecommendRequest) (*solardomain.Recommendation, error) {
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.recommend, nil
}

type fakeApprovalService struct {
	result *approvaldomain.EvaluateResult
	err    error
}

func (f *fakeApprovalService) Evaluate(ctx context.Context, req approvaldomain.EvaluateRequest) (*approvaldomain.EvaluateResult, error) {
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeFinancingService struct {
	result *financingdomain.SimulationResult
	err    error
}

func (f *fakeFinancingService) Simulate(ctx context.Context, req financingdomain.SimulationRequest) (*financingdomain.SimulationResult, error) {
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type testServices struct {
	pricing     *fakePricingService
	distributor *fakeDistributorService
	tariff      *fakeTariffService
	solar       *fakeSolarService
	approval    *fakeApprovalService
	financing   *fakeFinancingService
}

func newTestServer(t *testing.T) (*Server, *testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svcs := &testServices{
		pricing:     &fakePricingService{},
		distributor: &fakeDistributorService{},
		tariff:      &fakeTariffService{},
		solar:       &fakeSolarService{},
		approval:    &fakeApprovalService{},
		financing:   &fakeFinancingService{},
	}

	engine := NewEngine(zap.NewNop(), observability.Config{})
	srv := NewServer(ServerParams{
		Gin:            engine,
		Cfg:            config.Config{},
		Clock:          clock.NewFakeClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)),
		PricingSvc:     svcs.pricing,
		DistributorSvc: svcs.distributor,
		TariffSvc:      svcs.tariff,
		SolarSvc:       svcs.solar,
		ApprovalSvc:    svcs.approval,
		FinancingSvc:   svcs.financing,
	})
	return srv, svcs
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}
