// routeplan runs the optimization pipeline once from the command line:
// read addresses (one per line, first line is the depot) from a file,
// print the optimized visiting order, savings, and fuel cost.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"route-optimizer-service/internal/adapters/ors"
	"route-optimizer-service/internal/config"
	"route-optimizer-service/internal/services"
)

func main() {
	input := flag.String("input", "data/addresses.txt", "file with one address per line; the first line is the depot")
	mpg := flag.Float64("mpg", services.DefaultMilesPerGallon, "vehicle fuel economy in miles per gallon")
	gasPrice := flag.Float64("gas-price", services.DefaultPricePerGallon, "fuel price in dollars per gallon")
	delay := flag.Float64("delay", 0, "seconds between geocoding calls (0 uses the default)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	client, err := ors.NewClientWithBaseURL(orsKey, config.Get("ORS_BASE_URL", ""))
	if err != nil {
		log.Fatal(err)
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read address file: %v", err)
	}

	req := services.OptimizeRouteRequest{
		AddressText:  string(raw),
		GeocodeDelay: time.Duration(*delay * float64(time.Second)),
		Fuel: services.FuelConfig{
			MilesPerGallon: *mpg,
			PricePerGallon: *gasPrice,
		},
		Progress: func(current, total int, label string) {
			fmt.Printf("geocoding %d/%d: %s\n", current, total, label)
		},
	}

	result, err := services.OptimizeRoute(context.Background(), req, client, client, client, nil)
	if err != nil {
		log.Fatalf("optimize route: %v", err)
	}

	printResult(result)
}

func printResult(result *services.OptimizeRouteResult) {
	plan := result.Plan

	fmt.Println()
	fmt.Println("Optimized visiting order:")
	fmt.Printf("  start at depot %s\n", plan.OrderedCoordinates[0])
	for i, stop := range plan.OrderedStopLabels {
		fmt.Printf("  %2d. %s\n", i+1, stop)
	}
	fmt.Println("  return to depot")

	fmt.Println()
	fmt.Printf("Distance: %.1f km   Driving time: %s\n",
		plan.Summary.DistanceKm(), formatDuration(plan.Summary.DurationSeconds))

	if result.Savings != nil {
		fmt.Printf("Saved vs entered order: %.1f km, %s (%.1f%%)\n",
			result.Savings.SavedDistanceKm,
			formatDuration(result.Savings.SavedDurationSeconds),
			result.Savings.PercentSaved,
		)
	} else {
		fmt.Println("Savings unavailable (baseline comparison failed)")
	}

	fmt.Printf("Estimated fuel cost: $%.2f\n", result.FuelCostUSD)

	for _, s := range result.Skipped {
		fmt.Printf("Skipped %q: %s\n", s.Address, s.Reason)
	}
	for _, warning := range result.Warnings {
		fmt.Println("Warning:", warning)
	}
}

func formatDuration(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}
