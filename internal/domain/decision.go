package domain

import "encoding/hex"

// Verdict is the computed disposition of one evaluation. Verdicts are never
// persisted; each request recomputes its own from fresh upstream state.
type Verdict uint8

const (
	// VerdictNotAccepted means the offer is not in the accepted lifecycle
	// stage, so no engagement condition is in force.
	VerdictNotAccepted Verdict = iota
	// VerdictAwaitingEngagement means no qualifying engagement exists yet
	// and the response deadline has not passed.
	VerdictAwaitingEngagement
	// VerdictAwaitingDuration means a qualifying engagement exists but its
	// required dwell time has not elapsed.
	VerdictAwaitingDuration
	// VerdictCancellable means the response deadline was missed; the offer
	// may be cancelled on-chain.
	VerdictCancellable
	// VerdictCompletable means the engagement condition is fully met; the
	// offer may be completed on-chain.
	VerdictCompletable
)

func (v Verdict) String() string {
	switch v {
	case VerdictNotAccepted:
		return "not_accepted"
	case VerdictAwaitingEngagement:
		return "awaiting_engagement"
	case VerdictAwaitingDuration:
		return "awaiting_duration"
	case VerdictCancellable:
		return "cancellable"
	case VerdictCompletable:
		return "completable"
	default:
		return "unknown"
	}
}

// Terminal reports whether the verdict authorizes an on-chain transition and
// therefore requires an attestation.
func (v Verdict) Terminal() bool {
	return v == VerdictCancellable || v == VerdictCompletable
}

// Result is the boolean the attestation commits to: true only for
// completable offers.
func (v Verdict) Result() bool {
	return v == VerdictCompletable
}

// Signature is a secp256k1 signature in the recoverable (v, r, s) split form
// the execution contract consumes.
type Signature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// RHex returns R as a 0x-prefixed hex string.
func (s Signature) RHex() string {
	return "0x" + hex.EncodeToString(s.R[:])
}

// SHex returns S as a 0x-prefixed hex string.
func (s Signature) SHex() string {
	return "0x" + hex.EncodeToString(s.S[:])
}

// Decision is the outcome of one evaluation. Signature is non-nil exactly
// when the verdict is terminal; an unsigned pending result never carries a
// signature.
type Decision struct {
	OfferID   OfferID
	Result    bool
	Verdict   Verdict
	Signature *Signature
}
