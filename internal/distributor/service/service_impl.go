package service

import (
	"context"
	"strings"

	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo distributordomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo distributordomain.Repository
}

func New(p Params) distributordomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("distributor.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, code string) (*distributordomain.Response, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, distributordomain.ErrInvalidCode
	}

	entity, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, distributordomain.ErrNotFound
	}

	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context) ([]distributordomain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]distributordomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func toResponse(d *distributordomain.Distributor) *distributordomain.Response {
	return &distributordomain.Response{
		ID:                  d.ID.String(),
		Code:                d.Code,
		Name:                d.Name,
		Tier:                d.Tier,
		RegionCode:          d.RegionCode,
		AvgDeliveryDays:     d.AvgDeliveryDays,
		DefaultLeadTimeDays: d.DefaultLeadTimeDays,
		Active:              d.Active,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}
