package services

import (
	"errors"
	"fmt"
)

// milesPerKm converts metric route distance to the miles an MPG figure
// expects.
const milesPerKm = 0.621371

// Defaults used when the caller does not override fuel settings.
const (
	DefaultMilesPerGallon = 18.0
	DefaultPricePerGallon = 2.859
)

// FuelConfig holds the vehicle economy and fuel price used for cost
// estimates.
type FuelConfig struct {
	MilesPerGallon float64
	PricePerGallon float64
}

// Validate rejects configurations that would produce a meaningless
// estimate, before any remote work happens.
func (c FuelConfig) Validate() error {
	if c.MilesPerGallon <= 0 {
		return errors.New("miles per gallon must be positive")
	}
	if c.PricePerGallon < 0 {
		return errors.New("price per gallon must not be negative")
	}
	return nil
}

// EstimateFuelCost converts route distance into an estimated fuel spend.
func EstimateFuelCost(distanceKm float64, cfg FuelConfig) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("estimate fuel cost: %w", err)
	}

	gallons := distanceKm * milesPerKm / cfg.MilesPerGallon
	return gallons * cfg.PricePerGallon, nil
}
