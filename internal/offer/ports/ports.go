// Package ports defines the upstream interfaces the offer snapshot reader
// depends on. Adapters live elsewhere; the reader only sees these contracts.
package ports

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"boostoracle/internal/domain"
)

// OfferRecord is the raw per-offer tuple as the ledger contract returns it,
// before any identifier normalization.
type OfferRecord struct {
	Receiver     common.Address
	AcceptedAtMs uint64
	DurationMs   uint64
	ContentURL   string
	KindSelector uint8
	State        uint8
}

// LedgerClient reads offer records from the ledger contract.
type LedgerClient interface {
	GetOffer(ctx context.Context, id domain.OfferID) (OfferRecord, error)
}

// Resolver normalizes the two indirect identifiers an offer record carries:
// the responder's custody address and the target content URL.
type Resolver interface {
	IdentityByAddress(ctx context.Context, addr common.Address) (domain.Identity, error)
	ContentByURL(ctx context.Context, url string) (domain.ContentRef, error)
}
