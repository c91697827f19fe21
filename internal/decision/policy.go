package decision

import "boostoracle/internal/domain"

// DayMS is the response window: a qualifying engagement must exist no later
// than acceptTime + DayMS for the offer to remain completable.
const DayMS int64 = 86_400_000

// Engagement carries the locator's answer into the policy. FoundAtMs is only
// meaningful when Found is true.
type Engagement struct {
	Found     bool
	FoundAtMs int64
}

// Evaluate applies the temporal policy to one offer snapshot. This is pure
// domain logic - no I/O, no clock reads; nowMs is an argument so tests and
// replays are exact.
//
// Rule order (first match wins):
//  1. Offer not in the accepted stage: nothing to enforce.
//  2. Deadline missed, either by silence past the deadline or by an
//     engagement that arrived too late: cancellable. An engagement landing
//     exactly on the deadline is in time; only strict excess cancels.
//  3. Engagement in time and the dwell duration strictly elapsed:
//     completable. Exact equality does not yet complete.
//  4. Otherwise the offer is still pending, either awaiting the engagement
//     or awaiting its dwell time.
func Evaluate(offer domain.Offer, eng Engagement, nowMs int64) domain.Verdict {
	if offer.State != domain.StateAccepted {
		return domain.VerdictNotAccepted
	}

	deadline := offer.AcceptTimeMs + DayMS

	if !eng.Found && nowMs > deadline {
		return domain.VerdictCancellable
	}
	if eng.Found && eng.FoundAtMs > deadline {
		return domain.VerdictCancellable
	}

	if eng.Found && nowMs > eng.FoundAtMs+offer.DurationMs {
		return domain.VerdictCompletable
	}

	if eng.Found {
		return domain.VerdictAwaitingDuration
	}
	return domain.VerdictAwaitingEngagement
}
