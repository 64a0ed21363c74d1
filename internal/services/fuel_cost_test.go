package services

import (
	"math"
	"testing"
)

func TestEstimateFuelCost(t *testing.T) {
	cfg := FuelConfig{MilesPerGallon: 20, PricePerGallon: 3.0}

	got, err := EstimateFuelCost(100, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 100 * 0.621371 / 20 * 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("cost = %v, want %v", got, want)
	}
}

func TestEstimateFuelCostZeroDistance(t *testing.T) {
	got, err := EstimateFuelCost(0, FuelConfig{MilesPerGallon: 18, PricePerGallon: 2.859})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("cost = %v, want 0", got)
	}
}

func TestFuelConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     FuelConfig
		wantErr bool
	}{
		{"valid", FuelConfig{MilesPerGallon: 18, PricePerGallon: 2.859}, false},
		{"free fuel is fine", FuelConfig{MilesPerGallon: 18, PricePerGallon: 0}, false},
		{"zero mpg", FuelConfig{MilesPerGallon: 0, PricePerGallon: 3}, true},
		{"negative mpg", FuelConfig{MilesPerGallon: -5, PricePerGallon: 3}, true},
		{"negative price", FuelConfig{MilesPerGallon: 18, PricePerGallon: -1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEstimateFuelCostRejectsZeroMPG(t *testing.T) {
	// Division by a zero MPG would otherwise produce +Inf.
	if _, err := EstimateFuelCost(100, FuelConfig{MilesPerGallon: 0, PricePerGallon: 3}); err == nil {
		t.Fatal("expected an error for zero miles per gallon")
	}
}
