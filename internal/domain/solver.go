package domain

// StepKind tags entries in a solver route: vehicle boundaries or jobs.
type StepKind int

const (
	StepStart StepKind = iota
	StepJob
	StepEnd
)

// The single optimization vehicle. Start and End both point at the depot,
// so every solved route is a closed loop.
type Vehicle struct {
	ID    int
	Start Coordinates
	End   Coordinates
}

// One stop submitted to the solver. IDs are assigned 0..N-1 in submission
// order; the pipeline uses them to map the solved order back onto input
// addresses.
type Job struct {
	ID       int
	Location Coordinates
}

// One entry of the visiting sequence returned by the solver.
// JobID is meaningful only when Kind == StepJob.
type SolutionStep struct {
	Kind  StepKind
	JobID int
}

// The ordered visiting sequence for the submitted vehicle. Unassigned
// counts jobs the solver could not place; any nonzero value invalidates
// the route.
type Solution struct {
	Steps      []SolutionStep
	Unassigned int
}
