package dto

// OptimizeRequest carries the pipeline input. Addresses may arrive as a
// list or as raw multi-line text; when both are present the list wins.
// The first address is the depot.
type OptimizeRequest struct {
	Addresses        []string `json:"addresses"`
	AddressText      string   `json:"address_text"`
	RateLimitSeconds float64  `json:"rate_limit_seconds"`
	MilesPerGallon   float64  `json:"miles_per_gallon"`
	PricePerGallon   float64  `json:"price_per_gallon"`
}

type CoordinateResponse struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// RoutePlanResponse is the optimized route: stops in driving order
// (depot excluded), the depot-bracketed coordinate sequence, and the
// road geometry as [lon, lat] points.
type RoutePlanResponse struct {
	Stops           []string             `json:"stops"`
	Coordinates     []CoordinateResponse `json:"coordinates"`
	Geometry        [][]float64          `json:"geometry"`
	DistanceMeters  float64              `json:"distance_meters"`
	DurationSeconds float64              `json:"duration_seconds"`
}

type RouteSummaryResponse struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type SavingsResponse struct {
	SavedDistanceKm      float64 `json:"saved_distance_km"`
	SavedDurationSeconds float64 `json:"saved_duration_seconds"`
	PercentSaved         float64 `json:"percent_saved"`
}

type SkippedAddressResponse struct {
	Address string `json:"address"`
	Reason  string `json:"reason"`
}

// OptimizeResponse is the full pipeline result. Baseline and savings are
// omitted when the baseline comparison was unavailable.
type OptimizeResponse struct {
	Plan        RoutePlanResponse        `json:"plan"`
	Baseline    *RouteSummaryResponse    `json:"baseline,omitempty"`
	Savings     *SavingsResponse         `json:"savings,omitempty"`
	FuelCostUSD float64                  `json:"fuel_cost_usd"`
	Skipped     []SkippedAddressResponse `json:"skipped"`
	Warnings    []string                 `json:"warnings"`
}
