package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"bike-rental-billing/internal/config"
	"bike-rental-billing/internal/domain"
	"bike-rental-billing/internal/logger"
	"bike-rental-billing/internal/service"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (standard rates when empty)")
	durations := flag.String("durations", "", "Comma separated rental durations, e.g. 90m,26h,4d,1w")
	plan := flag.String("plan", "", "Price a single duration with this plan instead of the best plan")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitializeWithWriter(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	rates, err := service.BuildRates(cfg.Pricing.Plans, cfg.Pricing.Discounts)
	if err != nil {
		log.Fatalf("Invalid pricing configuration: %v", err)
	}
	svc := service.NewPricingService(service.NewRateCatalog(rates))

	seconds, err := parseDurations(*durations)
	if err != nil {
		log.Fatalf("Invalid durations: %v", err)
	}

	q, err := quote(context.Background(), svc, *plan, seconds)
	if err != nil {
		log.Fatalf("Failed to price rental: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		log.Fatalf("Failed to write quote: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func quote(ctx context.Context, svc service.PricingService, plan string, seconds []int64) (*domain.Quote, error) {
	switch {
	case plan != "":
		if len(seconds) != 1 {
			return nil, fmt.Errorf("-plan needs exactly one duration, got %d", len(seconds))
		}
		return svc.PlanCost(ctx, plan, seconds[0])
	case len(seconds) == 1:
		return svc.SingleRentalBestPrice(ctx, seconds[0])
	default:
		return svc.GroupRentalBestPrice(ctx, seconds)
	}
}

// parseDurations accepts Go durations plus whole-number "d" and "w" suffixes.
func parseDurations(raw string) ([]int64, error) {
	var out []int64
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := parseDuration(field)
		if err != nil {
			return nil, err
		}
		if d%time.Second != 0 {
			return nil, fmt.Errorf("%q is not a whole number of seconds", field)
		}
		out = append(out, int64(d/time.Second))
	}
	return out, nil
}

func parseDuration(s string) (time.Duration, error) {
	var unit time.Duration
	switch {
	case strings.HasSuffix(s, "d"):
		unit = 24 * time.Hour
	case strings.HasSuffix(s, "w"):
		unit = 7 * 24 * time.Hour
	default:
		return time.ParseDuration(s)
	}

	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if limit := math.MaxInt64 / int64(unit); n > limit || n < -limit {
		return 0, fmt.Errorf("duration %q out of range", s)
	}
	return time.Duration(n) * unit, nil
}
