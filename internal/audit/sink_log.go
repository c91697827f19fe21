package audit

import (
	"context"
	"log/slog"
)

// LogSink writes audit events to the structured log. Used when no brokers
// are configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, ev Event) error {
	s.logger.InfoContext(ctx, "attestation issued",
		"request_id", ev.RequestID,
		"offer_id", ev.OfferID,
		"verdict", ev.Verdict,
		"result", ev.Result,
		"attestor", ev.Attestor,
	)
	return nil
}
