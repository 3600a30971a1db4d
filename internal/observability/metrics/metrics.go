package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	calculations     metric.Int64Counter
	batchItems       metric.Int64Histogram
	rulesApplied     metric.Int64Counter
	tariffCacheHits  metric.Int64Counter
	tariffCacheMiss  metric.Int64Counter
	rateLimitAllowed metric.Int64Counter
	rateLimitDenied  metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down meter provider")
			return provider.Shutdown(ctx)
		},
	})

	log.Info("metrics initialized",
		zap.String("endpoint", cfg.ExporterEndpoint),
		zap.String("protocol", cfg.ExporterProtocol),
	)

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "heliora"
	}
	meter := provider.Meter(name)

	calculations, err := meter.Int64Counter("heliora_pricing_calculations_total")
	if err != nil {
		return nil, err
	}
	batchItems, err := meter.Int64Histogram("heliora_pricing_batch_items")
	if err != nil {
		return nil, err
	}
	rulesApplied, err := meter.Int64Counter("heliora_pricing_rules_applied_total")
	if err != nil {
		return nil, err
	}
	tariffCacheHits, err := meter.Int64Counter("heliora_tariff_cache_hits_total")
	if err != nil {
		return nil, err
	}
	tariffCacheMiss, err := meter.Int64Counter("heliora_tariff_cache_misses_total")
	if err != nil {
		return nil, err
	}
	rateLimitAllowed, err := meter.Int64Counter("heliora_rate_limit_allowed_total")
	if err != nil {
		return nil, err
	}
	rateLimitDenied, err := meter.Int64Counter("heliora_rate_limit_denied_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		calculations:     calculations,
		batchItems:       batchItems,
		rulesApplied:     rulesApplied,
		tariffCacheHits:  tariffCacheHits,
		tariffCacheMiss:  tariffCacheMiss,
		rateLimitAllowed: rateLimitAllowed,
		rateLimitDenied:  rateLimitDenied,
	}, nil
}

// RecordCalculation increments the pricing calculation count.
func (m *Metrics) RecordCalculation(ctx context.Context, distributorCode string, outcome string) {
	if m == nil {
		return
	}
	m.calculations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("distributor", strings.TrimSpace(distributorCode)),
		attribute.String("outcome", outcome),
	))
}

// RecordBatchSize records the line-item count of a batch calculation.
func (m *Metrics) RecordBatchSize(ctx context.Context, size int) {
	if m == nil {
		return
	}
	m.batchItems.Record(ctx, int64(size))
}

// RecordRulesApplied increments the applied-rule count.
func (m *Metrics) RecordRulesApplied(ctx context.Context, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.rulesApplied.Add(ctx, int64(count))
}

// RecordTariffCache records a tariff cache hit or miss.
func (m *Metrics) RecordTariffCache(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.tariffCacheHits.Add(ctx, 1)
		return
	}
	m.tariffCacheMiss.Add(ctx, 1)
}

// RecordRateLimit records a rate-limit decision.
func (m *Metrics) RecordRateLimit(ctx context.Context, allowed bool) {
	if m == nil {
		return
	}
	if allowed {
		m.rateLimitAllowed.Add(ctx, 1)
		return
	}
	m.rateLimitDenied.Add(ctx, 1)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	ctx := context.Background()
	switch protocol {
	case "http", "http/protobuf":
		return otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	case "grpc", "":
		return otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported otlp metric protocol %q", protocol)
	}
}
