// Package offer reads one immutable snapshot of an on-chain offer per
// evaluation. Unlike engagement lookups, any failure here is fatal for the
// request: a partially resolved offer is not usable.
package offer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"boostoracle/internal/domain"
	"boostoracle/internal/offer/ports"
)

// Reader fetches and normalizes offer snapshots.
type Reader struct {
	ledger   ports.LedgerClient
	resolver ports.Resolver
}

func NewReader(ledger ports.LedgerClient, resolver ports.Resolver) (*Reader, error) {
	if ledger == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	return &Reader{ledger: ledger, resolver: resolver}, nil
}

// Fetch reads the offer record and resolves its two indirections. The
// custody-address and content-URL lookups hit independent endpoints, so they
// run in parallel.
func (r *Reader) Fetch(ctx context.Context, id domain.OfferID) (domain.Offer, error) {
	if !id.Valid() {
		return domain.Offer{}, fmt.Errorf("offer id must be positive")
	}

	rec, err := r.ledger.GetOffer(ctx, id)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("read offer %d from ledger: %w", id, err)
	}

	kind, err := domain.ParseEngagementKind(rec.KindSelector)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("offer %d: %w", id, err)
	}

	var (
		responder domain.Identity
		content   domain.ContentRef
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		responder, err = r.resolver.IdentityByAddress(gctx, rec.Receiver)
		if err != nil {
			return fmt.Errorf("resolve responder identity: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		content, err = r.resolver.ContentByURL(gctx, rec.ContentURL)
		if err != nil {
			return fmt.Errorf("resolve target content: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Offer{}, fmt.Errorf("offer %d: %w", id, err)
	}

	return domain.Offer{
		ID:           id,
		State:        domain.OfferState(rec.State),
		Kind:         kind,
		Responder:    responder,
		Content:      content,
		AcceptTimeMs: int64(rec.AcceptedAtMs),
		DurationMs:   int64(rec.DurationMs),
	}, nil
}
