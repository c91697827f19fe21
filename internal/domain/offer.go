package domain

import "fmt"

// OfferID is the on-chain identifier of a boost offer. Zero is never a valid
// id; the ledger numbers offers from one.
type OfferID uint64

// Valid reports whether the id could refer to an offer at all.
func (id OfferID) Valid() bool {
	return id > 0
}

// OfferState mirrors the ledger's offer lifecycle enum. Only StateAccepted
// offers are eligible for evaluation; every other state short-circuits to an
// unsigned pending result.
type OfferState uint8

const (
	StateOpen OfferState = iota
	StateAccepted
	StateCompleted
	StateCancelled
)

func (s OfferState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateAccepted:
		return "accepted"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Identity is the numeric user id a custody address resolves to in the
// social index.
type Identity uint64

// ContentRef is the canonical 0x-hex hash of a piece of content in the
// social index. Offers store a content URL on-chain; the snapshot reader
// resolves it to this form before any engagement lookup.
type ContentRef string

// Offer is the immutable snapshot of an on-chain boost offer used for one
// evaluation. It is read once per request and never re-fetched mid-decision.
type Offer struct {
	ID           OfferID
	State        OfferState
	Kind         EngagementKind
	Responder    Identity
	Content      ContentRef
	AcceptTimeMs int64
	DurationMs   int64
}
