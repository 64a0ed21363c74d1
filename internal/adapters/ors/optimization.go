package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

type optimizationRequest struct {
	Jobs     []optimizationJob     `json:"jobs"`
	Vehicles []optimizationVehicle `json:"vehicles"`
}

type optimizationJob struct {
	ID       int       `json:"id"`
	Location []float64 `json:"location"`
}

type optimizationVehicle struct {
	ID      int       `json:"id"`
	Profile string    `json:"profile"`
	Start   []float64 `json:"start"`
	End     []float64 `json:"end"`
}

type optimizationStep struct {
	Type string `json:"type"`
	ID   *int   `json:"id"`
}

type optimizationResponse struct {
	Code       int    `json:"code"`
	Error      string `json:"error"`
	Unassigned []struct {
		ID int `json:"id"`
	} `json:"unassigned"`
	Routes []struct {
		Steps []optimizationStep `json:"steps"`
	} `json:"routes"`
}

// Solve submits one vehicle and its jobs to /optimization (the hosted
// VROOM solver) and maps the returned step list onto the domain model.
// The solver's answer is authoritative for each invocation; nothing is
// reordered here.
func (c *Client) Solve(
	ctx context.Context,
	vehicle domain.Vehicle,
	jobs []domain.Job,
) (_ *domain.Solution, err error) {
	defer obs.Time(ctx, "ors.optimization")(&err)

	endpoint := c.baseURL + "/optimization"

	reqJobs := make([]optimizationJob, 0, len(jobs))
	for _, j := range jobs {
		reqJobs = append(reqJobs, optimizationJob{
			ID:       j.ID,
			Location: j.Location.CoordsToList(),
		})
	}

	payload, err := json.Marshal(optimizationRequest{
		Jobs: reqJobs,
		Vehicles: []optimizationVehicle{{
			ID:      vehicle.ID,
			Profile: c.profile,
			Start:   vehicle.Start.CoordsToList(),
			End:     vehicle.End.CoordsToList(),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal optimization request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, "optimization", func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded optimizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode optimization response: %w", err)
	}

	if decoded.Code != 0 {
		return nil, fmt.Errorf("solver rejected request (code %d): %s", decoded.Code, decoded.Error)
	}

	if len(decoded.Routes) != 1 {
		return nil, fmt.Errorf("expected 1 route, got %d", len(decoded.Routes))
	}

	steps := make([]domain.SolutionStep, 0, len(decoded.Routes[0].Steps))
	for _, st := range decoded.Routes[0].Steps {
		step, err := toSolutionStep(st)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return &domain.Solution{
		Steps:      steps,
		Unassigned: len(decoded.Unassigned),
	}, nil
}

// toSolutionStep converts a wire step into the tagged domain variant.
func toSolutionStep(st optimizationStep) (domain.SolutionStep, error) {
	switch st.Type {
	case "start":
		return domain.SolutionStep{Kind: domain.StepStart}, nil
	case "end":
		return domain.SolutionStep{Kind: domain.StepEnd}, nil
	case "job":
		if st.ID == nil {
			return domain.SolutionStep{}, fmt.Errorf("job step missing id")
		}
		return domain.SolutionStep{Kind: domain.StepJob, JobID: *st.ID}, nil
	default:
		return domain.SolutionStep{}, fmt.Errorf("unknown step type %q", st.Type)
	}
}
