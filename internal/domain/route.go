package domain

// Aggregate distance and driving time for one computed route.
// Baseline and optimized routes get separate summaries; they are never
// merged.
type RouteSummary struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// DistanceKm converts the summary distance to kilometers.
func (s RouteSummary) DistanceKm() float64 { return s.DistanceMeters / 1000 }

// Represents the planned visiting order for a single optimization run.
// A RoutePlan is the output of the full pipeline and is immutable planning
// data: a new run replaces the previous plan wholesale.
//
// OrderedCoordinates opens and closes with the depot. OrderedStopLabels
// holds the visited addresses in driving order, depot excluded. Geometry
// is the drivable path as [lon, lat] points, ready for map display.
type RoutePlan struct {
	OrderedCoordinates []Coordinates
	OrderedStopLabels  []string
	Geometry           [][]float64
	Summary            RouteSummary
}

// Compares the optimized route against the route in the order the
// addresses were entered. Values are signed: an optimization that made
// the route worse is reported as-is, never clamped to zero.
type SavingsReport struct {
	SavedDistanceKm      float64
	SavedDurationSeconds float64
	PercentSaved         float64
}
