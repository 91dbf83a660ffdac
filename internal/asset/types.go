package asset

import "encoding/json"

// SubmitInput carries a new transformation job request. Options is the
// kind-specific payload, stored verbatim on the job record.
type SubmitInput struct {
	ContentID string
	Kind      string
	Options   json.RawMessage
}

// ProcessInput identifies a queued job picked up by the worker.
type ProcessInput struct {
	JobID     string
	ContentID string
	Kind      string
}
