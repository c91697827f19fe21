// Package oracle orchestrates one offer evaluation: snapshot, engagement
// lookup, policy, and (for terminal verdicts) attestation. Each evaluation is
// stateless and strictly sequential; the engagement scan always finishes
// before the policy runs.
package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"boostoracle/internal/audit"
	"boostoracle/internal/decision"
	"boostoracle/internal/domain"
	"boostoracle/internal/oracle/metrics"
	"boostoracle/pkg/requestcontext"
)

// SnapshotReader fetches normalized offer snapshots.
type SnapshotReader interface {
	Fetch(ctx context.Context, id domain.OfferID) (domain.Offer, error)
}

// EngagementLocator finds the qualifying engagement timestamp, if any.
// Lookup failures surface as found=false, never as errors.
type EngagementLocator interface {
	Locate(ctx context.Context, kind domain.EngagementKind, responder domain.Identity, content domain.ContentRef) (int64, bool)
}

// Attestor signs terminal decisions.
type Attestor interface {
	Sign(offerID domain.OfferID, result bool) (domain.Signature, error)
}

// Service runs evaluations.
type Service struct {
	offers      SnapshotReader
	engagements EngagementLocator
	attestor    Attestor
	attestorID  string
	auditTrail  *audit.Publisher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditTrail enables the attestation audit trail. attestorID is the
// address recorded alongside each event.
func WithAuditTrail(p *audit.Publisher, attestorID string) Option {
	return func(s *Service) {
		s.auditTrail = p
		s.attestorID = attestorID
	}
}

// WithClock overrides the evaluation clock. Tests pin it to simulate any
// point in an offer's timeline.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func New(offers SnapshotReader, engagements EngagementLocator, attestor Attestor, opts ...Option) (*Service, error) {
	if offers == nil {
		return nil, fmt.Errorf("snapshot reader is required")
	}
	if engagements == nil {
		return nil, fmt.Errorf("engagement locator is required")
	}
	if attestor == nil {
		return nil, fmt.Errorf("attestor is required")
	}
	s := &Service{
		offers:      offers,
		engagements: engagements,
		attestor:    attestor,
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Evaluate decides the disposition of one offer. The returned decision
// carries a signature exactly when the verdict is terminal.
func (s *Service) Evaluate(ctx context.Context, offerID domain.OfferID) (domain.Decision, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveEvaluateLatency(time.Since(start))
	}()

	offer, err := s.offers.Fetch(ctx, offerID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("snapshot phase: %w", err)
	}

	// Non-accepted offers have no engagement condition in force, so the
	// index is never consulted for them.
	var eng decision.Engagement
	if offer.State == domain.StateAccepted {
		ts, found := s.engagements.Locate(ctx, offer.Kind, offer.Responder, offer.Content)
		eng = decision.Engagement{Found: found, FoundAtMs: ts}
	}

	nowMs := s.now().UnixMilli()
	verdict := decision.Evaluate(offer, eng, nowMs)
	s.metrics.IncrementVerdict(verdict.String())

	dec := domain.Decision{
		OfferID: offerID,
		Result:  verdict.Result(),
		Verdict: verdict,
	}

	if verdict.Terminal() {
		sig, err := s.attestor.Sign(offerID, dec.Result)
		if err != nil {
			return domain.Decision{}, fmt.Errorf("attestation phase: offer %d: %w", offerID, err)
		}
		dec.Signature = &sig
		s.metrics.IncrementAttestation(dec.Result)

		if err := s.auditTrail.Emit(ctx, audit.Event{
			RequestID: requestcontext.RequestID(ctx),
			OfferID:   uint64(offerID),
			Verdict:   verdict.String(),
			Result:    dec.Result,
			Attestor:  s.attestorID,
		}); err != nil {
			// Best-effort trail; the decision stands either way.
			s.logger.WarnContext(ctx, "audit emit failed",
				"offer_id", offerID,
				"error", err,
			)
		}
	}

	s.logger.InfoContext(ctx, "offer evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"offer_id", offerID,
		"state", offer.State.String(),
		"kind", offer.Kind.String(),
		"verdict", verdict.String(),
		"signed", dec.Signature != nil,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return dec, nil
}
