package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Get(ctx context.Context, code string) (*Response, error)
	List(ctx context.Context) ([]Response, error)
}

type Response struct {
	ID                  string    `json:"id"`
	Code                string    `json:"code"`
	Name                string    `json:"name"`
	Tier                Tier      `json:"tier"`
	RegionCode          string    `json:"region_code,omitempty"`
	AvgDeliveryDays     *int      `json:"avg_delivery_days,omitempty"`
	DefaultLeadTimeDays int       `json:"default_lead_time_days"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

var (
	ErrInvalidCode = errors.New("invalid_distributor_code")
	ErrInvalidTier = errors.New("invalid_tier")
	ErrNotFound    = errors.New("distributor_not_found")
)
