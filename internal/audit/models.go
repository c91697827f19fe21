package audit

import "time"

// Event records one terminal decision. Keep it transport-agnostic so sinks
// can fan out to Kafka, logs, or test buffers.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	OfferID   uint64    `json:"offer_id"`
	Verdict   string    `json:"verdict"`
	Result    bool      `json:"result"`
	Attestor  string    `json:"attestor"`
}
