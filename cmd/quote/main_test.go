package main

import (
	"context"
	"testing"

	"bike-rental-billing/internal/billing"
	"bike-rental-billing/internal/domain"
	"bike-rental-billing/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurations(t *testing.T) {
	t.Run("Mixed units", func(t *testing.T) {
		seconds, err := parseDurations("90m, 26h,4d,1w")
		require.NoError(t, err)
		assert.Equal(t, []int64{5400, 93600, 345600, 604800}, seconds)
	})

	t.Run("Empty", func(t *testing.T) {
		seconds, err := parseDurations("")
		require.NoError(t, err)
		assert.Empty(t, seconds)
	})

	t.Run("Negative is parsed and left to pricing", func(t *testing.T) {
		seconds, err := parseDurations("-1h")
		require.NoError(t, err)
		assert.Equal(t, []int64{-3600}, seconds)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"abc", "xd", "1.5s"} {
			_, err := parseDurations(raw)
			assert.Error(t, err, raw)
		}
	})

	t.Run("Day and week counts out of range", func(t *testing.T) {
		for _, raw := range []string{"100000w", "-30000w", "200000d"} {
			_, err := parseDurations(raw)
			if assert.Error(t, err, raw) {
				assert.Contains(t, err.Error(), "out of range", raw)
			}
		}
	})

	t.Run("Largest week count", func(t *testing.T) {
		seconds, err := parseDurations("15250w")
		require.NoError(t, err)
		assert.Equal(t, []int64{15250 * 604800}, seconds)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("Standard rates without a file", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Len(t, cfg.Pricing.Plans, 3)
	})

	t.Run("Bad environment is reported", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "99999")
		_, err := loadConfig("")
		assert.Error(t, err)
	})
}

func TestQuote(t *testing.T) {
	rates, err := service.BuildRates(nil, nil)
	require.NoError(t, err)
	svc := service.NewPricingService(service.NewRateCatalog(rates))
	ctx := context.Background()

	t.Run("Single", func(t *testing.T) {
		q, err := quote(ctx, svc, "", []int64{345600})
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteKindSingle, q.Kind)
		assert.Equal(t, 60.0, q.Total)
	})

	t.Run("Plan", func(t *testing.T) {
		q, err := quote(ctx, svc, "ByDay", []int64{93600})
		require.NoError(t, err)
		assert.Equal(t, 40.0, q.Total)
	})

	t.Run("Plan needs one duration", func(t *testing.T) {
		_, err := quote(ctx, svc, "ByDay", []int64{60, 60})
		assert.Error(t, err)
	})

	t.Run("Group", func(t *testing.T) {
		q, err := quote(ctx, svc, "", []int64{3600, 3600, 3600})
		require.NoError(t, err)
		assert.Equal(t, 10.5, q.Total)
	})

	t.Run("Invalid duration", func(t *testing.T) {
		_, err := quote(ctx, svc, "", []int64{0})
		assert.ErrorIs(t, err, billing.ErrInvalidDuration)
	})
}
