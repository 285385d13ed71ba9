package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/google/uuid"

	"github.com/Shubhamjh4/airsense360/models"
)

// PredictorService drives one model invocation per API request: it walks the
// interpreter candidates in order, launches the predictor through the runner
// and extracts the JSON payload from whichever candidate exits cleanly first.
// The candidate list is fixed at startup and shared read-only; everything else
// is per-invocation, so concurrent requests never interfere.
type PredictorService struct {
	candidates []string
	runner     *ModelRunner
}

func NewPredictorService(candidates []string, runner *ModelRunner) *PredictorService {
	return &PredictorService{
		candidates: candidates,
		runner:     runner,
	}
}

// Invoke runs one full prediction attempt and returns exactly once: either
// the raw JSON payload or a classified *InvocationError.
//
// Fallback rules: a candidate that cannot be launched or exits non-zero is
// skipped in favor of the next one. A candidate that exits cleanly is
// authoritative — malformed output from it is terminal, later candidates are
// never consulted. A timeout after a successful launch is terminal too, since
// the predictor may have partially run.
func (s *PredictorService) Invoke(ctx context.Context, action string, params map[string]interface{}) (json.RawMessage, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}

	invID := uuid.NewString()
	var last *InvocationError

	for i, candidate := range s.candidates {
		outcome, runErr := s.runCandidate(ctx, invID, candidate, action, string(paramsJSON))
		if runErr != nil {
			switch runErr.Kind {
			case ErrKindExecutableNotFound, ErrKindProcessExited:
				last = runErr
				log.Printf("[%s] candidate %d/%d failed: %v", invID, i+1, len(s.candidates), runErr)
				continue
			default:
				return nil, runErr
			}
		}

		payload, extractErr := ExtractPayload(outcome.Stdout)
		if extractErr != nil {
			extractErr.Candidate = candidate
			log.Printf("[%s] candidate %q exited cleanly but payload is malformed", invID, candidate)
			return nil, extractErr
		}

		log.Printf("[%s] %s answered by %q in %v", invID, action, candidate, outcome.Duration)
		return payload, nil
	}

	if last == nil {
		return nil, &InvocationError{
			Kind:       ErrKindExhausted,
			Diagnostic: "no interpreter candidates configured",
		}
	}
	return nil, &InvocationError{
		Kind:       ErrKindExhausted,
		Candidate:  last.Candidate,
		Diagnostic: last.Diagnostic,
		Err:        last,
	}
}

// runCandidate wraps a single child-process attempt in an X-Ray subsegment.
func (s *PredictorService) runCandidate(ctx context.Context, invID, candidate, action, paramsJSON string) (outcome *ProcessOutcome, runErr *InvocationError) {
	xray.Capture(ctx, "Model.Run", func(ctx1 context.Context) error {
		outcome, runErr = s.runner.Run(candidate, action, paramsJSON)

		if seg := xray.GetSegment(ctx1); seg != nil {
			seg.AddMetadata("model.invocation_id", invID)
			seg.AddMetadata("model.candidate", candidate)
			seg.AddMetadata("model.action", action)
			if runErr != nil {
				seg.AddMetadata("model.error_kind", runErr.Kind.String())
			}
		}

		if runErr != nil {
			return runErr
		}
		return nil
	})
	return outcome, runErr
}

// PredictCurrent returns the current air-quality reading for a location.
func (s *PredictorService) PredictCurrent(ctx context.Context, location string) (*models.CurrentReading, error) {
	raw, err := s.Invoke(ctx, models.ActionCurrent, map[string]interface{}{
		"location": location,
	})
	if err != nil {
		return nil, err
	}

	var reading models.CurrentReading
	if err := json.Unmarshal(raw, &reading); err != nil {
		return nil, &InvocationError{
			Kind:       ErrKindMalformedOutput,
			Diagnostic: string(raw),
			Err:        err,
		}
	}
	return &reading, nil
}

// PredictForecast returns forecast points for the next `days` days.
func (s *PredictorService) PredictForecast(ctx context.Context, location string, days int) ([]models.ForecastPoint, error) {
	raw, err := s.Invoke(ctx, models.ActionForecast, map[string]interface{}{
		"location": location,
		"days":     days,
	})
	if err != nil {
		return nil, err
	}

	var forecast []models.ForecastPoint
	if err := json.Unmarshal(raw, &forecast); err != nil {
		return nil, &InvocationError{
			Kind:       ErrKindMalformedOutput,
			Diagnostic: string(raw),
			Err:        err,
		}
	}
	return forecast, nil
}

// PredictNearby returns readings for stations within `radius` km.
func (s *PredictorService) PredictNearby(ctx context.Context, location string, radius int) ([]models.NearbyStationReading, error) {
	raw, err := s.Invoke(ctx, models.ActionNearby, map[string]interface{}{
		"location": location,
		"radius":   radius,
	})
	if err != nil {
		return nil, err
	}

	var stations []models.NearbyStationReading
	if err := json.Unmarshal(raw, &stations); err != nil {
		return nil, &InvocationError{
			Kind:       ErrKindMalformedOutput,
			Diagnostic: string(raw),
			Err:        err,
		}
	}
	return stations, nil
}
