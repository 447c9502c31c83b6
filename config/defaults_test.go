package config

import (
	"testing"
	"time"

	"nearby/internal/domain/constants"
	"nearby/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Store)
	assert.Equal(t, constants.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, defaultGuestTokenTTL, cfg.GuestToken.TTL)
	assert.Equal(t, DefaultEngineConfig(), cfg.Engine)
	assert.Len(t, cfg.Entitlements.BoostTypes, 2)
	assert.Equal(t, 10, cfg.Entitlements.SuperLikePointCost)
	assert.Empty(t, cfg.PubSub.Provider)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Store:  &StoreConfig{AutoMigrate: true},
		Engine: &EngineConfig{StoreTimeout: 500 * time.Millisecond, MaxRadiusMiles: 100},
		Entitlements: &EntitlementsConfig{
			BoostTypes: []BoostTypeConfig{{Name: "mini", Factor: 1.2, DurationMinutes: 10, PointCost: 5}},
		},
	}
	cfg.ApplyDefaults()

	// a blank driver is filled without dropping the rest of the section
	assert.Equal(t, constants.StoreDriverPostgres, cfg.Store.Driver)
	assert.True(t, cfg.Store.AutoMigrate)

	assert.Equal(t, 500*time.Millisecond, cfg.Engine.StoreTimeout)
	assert.Equal(t, 100.0, cfg.Engine.MaxRadiusMiles)
	assert.Equal(t, float64(defaultRadiusMiles), cfg.Engine.DefaultRadiusMiles)

	require.Len(t, cfg.Entitlements.BoostTypes, 1)
	assert.Equal(t, "mini", cfg.Entitlements.BoostTypes[0].Name)
	assert.Len(t, cfg.Entitlements.Quotas, 4)
	assert.Len(t, cfg.Entitlements.MembershipPlans, 2)
}

func TestEntitlementsConfig_Lookups(t *testing.T) {
	cfg := DefaultEntitlementsConfig()
	cfg.Quotas["custom"] = QuotaConfig{Limit: 3, Period: "Monthly"}

	t.Run("weekly quota", func(t *testing.T) {
		q := cfg.QuotaFor(entity.FeatureBoost)
		assert.Equal(t, 1, q.Limit)
		assert.Equal(t, entity.QuotaPeriodWeekly, q.Period)
	})

	t.Run("unknown period falls back to daily", func(t *testing.T) {
		q := cfg.QuotaFor(entity.FeatureType("custom"))
		assert.Equal(t, entity.QuotaPeriodDaily, q.Period)
	})

	t.Run("unconfigured feature has no allowance", func(t *testing.T) {
		q := cfg.QuotaFor(entity.FeatureType("missing"))
		assert.Equal(t, 0, q.Limit)
	})

	t.Run("boost type is case insensitive", func(t *testing.T) {
		bt, ok := cfg.BoostType("SUPER")
		require.True(t, ok)
		assert.Equal(t, 3.0, bt.Factor)

		_, ok = cfg.BoostType("mega")
		assert.False(t, ok)
	})

	t.Run("membership plan benefits", func(t *testing.T) {
		plan, ok := cfg.MembershipPlan("gold")
		require.True(t, ok)
		assert.True(t, plan.Benefits.UnlimitedSuperLikes)
		assert.Equal(t, 2.0, plan.Benefits.ProfileBoostFactor)
	})
}
