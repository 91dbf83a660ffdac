package kafka

import "time"

// AssetJobMessage is the wire format on TopicAssetJobs.
type AssetJobMessage struct {
	JobID       string    `json:"job_id"`
	ContentID   string    `json:"content_id"`
	Kind        string    `json:"kind"`
	SubmittedAt time.Time `json:"submitted_at"`
}
