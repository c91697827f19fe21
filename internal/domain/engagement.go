package domain

import "fmt"

// EngagementKind selects which social action satisfies an offer. The ledger
// stores it as a uint8 selector; ParseEngagementKind is the only way raw
// selector values enter the system, so out-of-range values are rejected at
// the snapshot boundary instead of surfacing as a bad lookup later.
type EngagementKind uint8

const (
	// KindAmplify requires the responder to repost the target content.
	KindAmplify EngagementKind = iota
	// KindQuote requires the responder to author a post embedding the
	// target content.
	KindQuote
	// KindReact requires the responder to like the target content.
	KindReact
)

// ParseEngagementKind validates a raw ledger selector.
func ParseEngagementKind(v uint8) (EngagementKind, error) {
	if v > uint8(KindReact) {
		return 0, fmt.Errorf("unknown engagement kind selector %d", v)
	}
	return EngagementKind(v), nil
}

func (k EngagementKind) String() string {
	switch k {
	case KindAmplify:
		return "amplify"
	case KindQuote:
		return "quote"
	case KindReact:
		return "react"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
