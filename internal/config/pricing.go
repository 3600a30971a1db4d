package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PricingConfig holds the reference-data defaults used by the pricing
// calculator when a profile carries no explicit value.
type PricingConfig struct {
	TierMultipliers      map[string]float64 `mapstructure:"tierMultipliers"`
	VolumeFallbackRatios VolumeRatios       `mapstructure:"volumeFallbackRatios"`
}

// VolumeRatios are the fallback discounted-price ratios per volume breakpoint.
type VolumeRatios struct {
	Tier1 float64 `mapstructure:"tier1"`
	Tier2 float64 `mapstructure:"tier2"`
	Tier3 float64 `mapstructure:"tier3"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TierMultipliers: map[string]float64{
			"bronze":   1.00,
			"silver":   0.95,
			"gold":     0.90,
			"platinum": 0.85,
		},
		VolumeFallbackRatios: VolumeRatios{
			Tier1: 0.95,
			Tier2: 0.90,
			Tier3: 0.85,
		},
	}
}

// PricingConfigHolder exposes the current pricing defaults and hot-reloads
// them when the config file changes on disk.
type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

func NewPricingConfigHolder() (*PricingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/heliora/config") // Volume-mounted config
	v.AddConfigPath("/etc/heliora")            // System config
	v.AddConfigPath(".")                       // Current directory (dev mode)

	v.SetEnvPrefix("HELIORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPricingConfig()
	v.SetDefault("pricing.tierMultipliers", defaults.TierMultipliers)
	v.SetDefault("pricing.volumeFallbackRatios", defaults.VolumeFallbackRatios)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg PricingConfig
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}
	if err := validatePricingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PricingConfig
		if err := v.UnmarshalKey("pricing", &updated); err != nil {
			log.Printf("[pricing-config] reload failed: %v", err)
			return
		}
		if err := validatePricingConfig(updated); err != nil {
			log.Printf("[pricing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[pricing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticPricingConfigHolder returns a holder pinned to cfg. Used by tests.
func NewStaticPricingConfigHolder(cfg PricingConfig) *PricingConfigHolder {
	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PricingConfigHolder) Get() PricingConfig {
	return h.current.Load().(PricingConfig)
}

func validatePricingConfig(cfg PricingConfig) error {
	if len(cfg.TierMultipliers) == 0 {
		return errors.New("pricing.tierMultipliers cannot be empty")
	}
	for tier, m := range cfg.TierMultipliers {
		if m <= 0 {
			return errors.New("pricing.tierMultipliers." + tier + " must be positive")
		}
	}
	ratios := []float64{
		cfg.VolumeFallbackRatios.Tier1,
		cfg.VolumeFallbackRatios.Tier2,
		cfg.VolumeFallbackRatios.Tier3,
	}
	for _, r := range ratios {
		if r <= 0 || r > 1 {
			return errors.New("pricing.volumeFallbackRatios must be in (0, 1]")
		}
	}
	return nil
}
