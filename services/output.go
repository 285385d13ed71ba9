package services

import (
	"encoding/json"
	"strings"
)

// ExtractPayload isolates the model's JSON payload from raw stdout. The script
// may print warnings or library noise before the result, so only the last
// non-empty line counts. That line must be a single compact JSON value;
// pretty-printed multi-line JSON is rejected, which is part of the contract
// the predictor script has to honor.
func ExtractPayload(stdout []byte) (json.RawMessage, *InvocationError) {
	lines := strings.Split(string(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if !json.Valid([]byte(line)) {
			return nil, &InvocationError{
				Kind:       ErrKindMalformedOutput,
				Diagnostic: strings.TrimSpace(string(stdout)),
			}
		}
		return json.RawMessage(line), nil
	}
	return nil, &InvocationError{
		Kind:       ErrKindMalformedOutput,
		Diagnostic: "model produced no output",
	}
}
