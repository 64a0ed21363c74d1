package services

import "route-optimizer-service/internal/domain"

// ComputeSavings compares the baseline (as-entered) route against the
// optimized one. A nil baseline yields a nil report: "no savings data"
// is distinct from "zero savings". Values are signed, so an optimization
// that performed worse produces negative numbers.
//
// PercentSaved is defined only when the baseline has a positive
// duration; otherwise it is reported as 0.
func ComputeSavings(baseline, optimized *domain.RouteSummary) *domain.SavingsReport {
	if baseline == nil || optimized == nil {
		return nil
	}

	savedSeconds := baseline.DurationSeconds - optimized.DurationSeconds

	percent := 0.0
	if baseline.DurationSeconds > 0 {
		percent = savedSeconds / baseline.DurationSeconds * 100
	}

	return &domain.SavingsReport{
		SavedDistanceKm:      baseline.DistanceKm() - optimized.DistanceKm(),
		SavedDurationSeconds: savedSeconds,
		PercentSaved:         percent,
	}
}
