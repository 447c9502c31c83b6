package config

import (
	"strings"
	"time"

	"nearby/internal/domain/constants"
	"nearby/internal/domain/entity"
)

const (
	defaultStoreTimeout           = 2 * time.Second
	defaultRankingLimit           = 100
	defaultDistanceEpsilonMiles   = 0.01
	defaultVenueDedupRadiusMiles  = 0.1
	defaultNearbyVenueRadiusMiles = 5
	defaultNearbyVenueLimit       = 20
	defaultRadiusMiles            = 25
	defaultMaxRadiusMiles         = 3000
	defaultNotifyTimeout          = 5 * time.Second
	defaultGuestTokenTTL          = 30 * 24 * time.Hour
	defaultMembershipBoostMinutes = 30
	defaultSuperLikePointCost     = 10
)

// DefaultEngineConfig returns the engine settings used when none are configured.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		StoreTimeout:           defaultStoreTimeout,
		RankingLimit:           defaultRankingLimit,
		DistanceEpsilonMiles:   defaultDistanceEpsilonMiles,
		VenueDedupRadiusMiles:  defaultVenueDedupRadiusMiles,
		NearbyVenueRadiusMiles: defaultNearbyVenueRadiusMiles,
		NearbyVenueLimit:       defaultNearbyVenueLimit,
		DefaultRadiusMiles:     defaultRadiusMiles,
		MaxRadiusMiles:         defaultMaxRadiusMiles,
		NotifyTimeout:          defaultNotifyTimeout,
	}
}

// DefaultEntitlementsConfig returns the free tier, boost catalog and plans used when none are configured.
func DefaultEntitlementsConfig() *EntitlementsConfig {
	return &EntitlementsConfig{
		Quotas: map[string]QuotaConfig{
			string(entity.FeatureSuperLike): {Limit: 1, Period: string(entity.QuotaPeriodDaily)},
			string(entity.FeatureBoost):     {Limit: 1, Period: string(entity.QuotaPeriodWeekly)},
			string(entity.FeatureRekindle):  {Limit: 1, Period: string(entity.QuotaPeriodDaily)},
			string(entity.FeatureFilter):    {Limit: 0, Period: string(entity.QuotaPeriodDaily)},
		},
		BoostTypes: []BoostTypeConfig{
			{Name: "standard", Factor: 2, DurationMinutes: 30, PointCost: 50, PriceCents: 299, Currency: "usd"},
			{Name: "super", Factor: 3, DurationMinutes: 30, PointCost: 120, PriceCents: 499, Currency: "usd"},
		},
		MembershipBoostMinutes: defaultMembershipBoostMinutes,
		MembershipPlans: []MembershipPlanConfig{
			{
				Type:                "plus",
				DurationDays:        30,
				PointCost:           500,
				UnlimitedLikes:      true,
				UnlimitedRekindles:  true,
				AdvancedFilters:     true,
				ProfileBoostFactor:  1.5,
				UnlimitedSuperLikes: false,
			},
			{
				Type:                "gold",
				DurationDays:        30,
				PointCost:           900,
				UnlimitedLikes:      true,
				UnlimitedSuperLikes: true,
				UnlimitedRekindles:  true,
				AdvancedFilters:     true,
				ProfileBoostFactor:  2,
			},
		},
		SuperLikePointCost: defaultSuperLikePointCost,
	}
}

// ApplyDefaults fills every unset optional section.
func (c *Config) ApplyDefaults() {
	if c.Store == nil {
		c.Store = &StoreConfig{}
	}
	if strings.TrimSpace(c.Store.Driver) == "" {
		c.Store.Driver = constants.StoreDriverPostgres
	}
	if c.GuestToken == nil || c.GuestToken.TTL <= 0 {
		c.GuestToken = &GuestTokenConfig{TTL: defaultGuestTokenTTL}
	}

	c.Engine = mergeEngine(c.Engine)

	if c.Entitlements == nil {
		c.Entitlements = DefaultEntitlementsConfig()
	} else {
		defaults := DefaultEntitlementsConfig()
		if len(c.Entitlements.Quotas) == 0 {
			c.Entitlements.Quotas = defaults.Quotas
		}
		if len(c.Entitlements.BoostTypes) == 0 {
			c.Entitlements.BoostTypes = defaults.BoostTypes
		}
		if len(c.Entitlements.MembershipPlans) == 0 {
			c.Entitlements.MembershipPlans = defaults.MembershipPlans
		}
		if c.Entitlements.MembershipBoostMinutes <= 0 {
			c.Entitlements.MembershipBoostMinutes = defaults.MembershipBoostMinutes
		}
		if c.Entitlements.SuperLikePointCost <= 0 {
			c.Entitlements.SuperLikePointCost = defaults.SuperLikePointCost
		}
	}

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{Enabled: true, Path: "/metrics"}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func mergeEngine(cfg *EngineConfig) *EngineConfig {
	defaults := DefaultEngineConfig()
	if cfg == nil {
		return defaults
	}

	merged := *cfg
	if merged.StoreTimeout <= 0 {
		merged.StoreTimeout = defaults.StoreTimeout
	}
	if merged.RankingLimit <= 0 {
		merged.RankingLimit = defaults.RankingLimit
	}
	if merged.DistanceEpsilonMiles <= 0 {
		merged.DistanceEpsilonMiles = defaults.DistanceEpsilonMiles
	}
	if merged.VenueDedupRadiusMiles <= 0 {
		merged.VenueDedupRadiusMiles = defaults.VenueDedupRadiusMiles
	}
	if merged.NearbyVenueRadiusMiles <= 0 {
		merged.NearbyVenueRadiusMiles = defaults.NearbyVenueRadiusMiles
	}
	if merged.NearbyVenueLimit <= 0 {
		merged.NearbyVenueLimit = defaults.NearbyVenueLimit
	}
	if merged.DefaultRadiusMiles <= 0 {
		merged.DefaultRadiusMiles = defaults.DefaultRadiusMiles
	}
	if merged.MaxRadiusMiles <= 0 {
		merged.MaxRadiusMiles = defaults.MaxRadiusMiles
	}
	if merged.NotifyTimeout <= 0 {
		merged.NotifyTimeout = defaults.NotifyTimeout
	}

	return &merged
}

// QuotaFor returns the configured base quota for a feature.
// Unconfigured features get a zero allowance.
func (c *EntitlementsConfig) QuotaFor(feature entity.FeatureType) entity.Quota {
	q, ok := c.Quotas[string(feature)]
	if !ok {
		return entity.Quota{Limit: 0, Period: entity.QuotaPeriodDaily}
	}

	period := entity.QuotaPeriod(strings.ToLower(q.Period))
	if period != entity.QuotaPeriodWeekly {
		period = entity.QuotaPeriodDaily
	}

	return entity.Quota{Limit: q.Limit, Period: period}
}

// BoostType looks up a catalog entry by name.
func (c *EntitlementsConfig) BoostType(name string) (entity.BoostType, bool) {
	for _, bt := range c.BoostTypes {
		if strings.EqualFold(bt.Name, name) {
			return entity.BoostType{
				Name:            bt.Name,
				Factor:          bt.Factor,
				DurationMinutes: bt.DurationMinutes,
				PointCost:       bt.PointCost,
				PriceCents:      bt.PriceCents,
				Currency:        strings.ToLower(bt.Currency),
			}, true
		}
	}

	return entity.BoostType{}, false
}

// MembershipPlan looks up a plan by type.
func (c *EntitlementsConfig) MembershipPlan(planType string) (entity.MembershipPlan, bool) {
	for _, p := range c.MembershipPlans {
		if strings.EqualFold(p.Type, planType) {
			return entity.MembershipPlan{
				Type:         p.Type,
				DurationDays: p.DurationDays,
				PointCost:    p.PointCost,
				Benefits: entity.MembershipBenefits{
					UnlimitedLikes:      p.UnlimitedLikes,
					UnlimitedSuperLikes: p.UnlimitedSuperLikes,
					UnlimitedRekindles:  p.UnlimitedRekindles,
					AdvancedFilters:     p.AdvancedFilters,
					ProfileBoostFactor:  p.ProfileBoostFactor,
				},
			}, true
		}
	}

	return entity.MembershipPlan{}, false
}
