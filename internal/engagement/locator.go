// Package engagement finds the qualifying social action for an offer, if one
// exists. Lookup failures deliberately degrade to "no engagement found": a
// flaky index must never flip an offer into a terminal state on its own, it
// can only delay evidence of engagement.
package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"boostoracle/internal/domain"
	"boostoracle/internal/engagement/ports"
)

// DefaultMaxPages bounds a single scan. A hundred pages is far beyond any
// legitimate engagement history for one piece of content.
const DefaultMaxPages = 100

// Locator dispatches to the kind-specific lookup strategies.
type Locator struct {
	index    ports.Index
	maxPages int
	logger   *slog.Logger
}

type Option func(*Locator)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// WithMaxPages overrides the per-scan page budget.
func WithMaxPages(n int) Option {
	return func(l *Locator) {
		if n > 0 {
			l.maxPages = n
		}
	}
}

func New(index ports.Index, opts ...Option) (*Locator, error) {
	if index == nil {
		return nil, fmt.Errorf("engagement index is required")
	}
	l := &Locator{
		index:    index,
		maxPages: DefaultMaxPages,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Locate returns the creation timestamp of the earliest qualifying
// engagement, or found=false when none exists. Errors are logged here and
// reported as not-found; the decision policy treats both identically.
func (l *Locator) Locate(ctx context.Context, kind domain.EngagementKind, responder domain.Identity, content domain.ContentRef) (int64, bool) {
	var (
		ts    int64
		found bool
		err   error
	)

	switch kind {
	case domain.KindAmplify:
		ts, found, err = l.locateAmplify(ctx, responder, content)
	case domain.KindQuote:
		ts, found, err = l.locateQuote(ctx, responder, content)
	case domain.KindReact:
		ts, found, err = l.locateReact(ctx, responder, content)
	default:
		// Selectors are validated at the snapshot boundary; this is
		// unreachable through normal flow.
		err = fmt.Errorf("unsupported engagement kind %d", kind)
	}

	if err != nil {
		l.logger.Warn("engagement lookup degraded to not-found",
			"kind", kind.String(),
			"responder", responder,
			"content", content,
			"error", err,
		)
		return 0, false
	}
	return ts, found
}

func (l *Locator) locateAmplify(ctx context.Context, responder domain.Identity, content domain.ContentRef) (int64, bool, error) {
	return scan(ctx,
		func(ctx context.Context, cursor string) (ports.Page, error) {
			return l.index.Amplifications(ctx, content, cursor)
		},
		func(e ports.Event) bool {
			return e.Author == responder
		},
		l.maxPages,
	)
}

func (l *Locator) locateQuote(ctx context.Context, responder domain.Identity, content domain.ContentRef) (int64, bool, error) {
	return scan(ctx,
		func(ctx context.Context, cursor string) (ports.Page, error) {
			return l.index.PostsByAuthor(ctx, responder, cursor)
		},
		func(e ports.Event) bool {
			for _, embed := range e.Embeds {
				if embed == content {
					return true
				}
			}
			return false
		},
		l.maxPages,
	)
}

func (l *Locator) locateReact(ctx context.Context, responder domain.Identity, content domain.ContentRef) (int64, bool, error) {
	return scan(ctx,
		func(ctx context.Context, cursor string) (ports.Page, error) {
			return l.index.Reactions(ctx, content, cursor)
		},
		func(e ports.Event) bool {
			return e.Author == responder
		},
		l.maxPages,
	)
}
