package domain

// Ties an input address to the coordinate it resolved to. Identity is
// positional: the pipeline preserves submission order, and the first
// resolved point is always the depot.
type GeocodedPoint struct {
	Address string
	Coord   Coordinates
}

// Records an address dropped during geocoding together with the reason.
// Skips are advisories, not errors; a skip never aborts the batch.
type SkippedAddress struct {
	Address string
	Reason  string
}
