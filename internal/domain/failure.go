package domain

import "strings"

// FailureKind is the closed classification of a provider failure reason.
type FailureKind string

const (
	// FailureNetworkHiccup is the provider-side network error message. The
	// order may still have been delivered, so it is not refundable.
	FailureNetworkHiccup FailureKind = "network_hiccup"
	// FailureAwardFailure means the provider accepted the order but could not
	// confirm the award. Ambiguous outcome, not refundable.
	FailureAwardFailure FailureKind = "award_failure"
	// FailureServerDisconnected means the provider lost its upstream mid
	// order. Ambiguous outcome, not refundable.
	FailureServerDisconnected FailureKind = "server_disconnected"
	// FailureOther covers every other reason, carried verbatim in Raw.
	FailureOther FailureKind = "other"
)

// denyListed maps a classified kind to the provider phrase that identifies it.
// A failed component whose reason matches one of these phrases is treated as
// possibly delivered and withheld from refund.
var denyListed = map[FailureKind]string{
	FailureNetworkHiccup:      "há um problema com a conexão de rede. por favor, tente novamente!",
	FailureAwardFailure:       "award failure",
	FailureServerDisconnected: "server disconnected",
}

// FailureReason is a classified provider failure with the original text kept
// for reporting.
type FailureReason struct {
	Kind FailureKind
	Raw  string
}

// ClassifyFailure matches the raw provider reason against the known ambiguous
// phrases. Matching is case-insensitive substring, the way the provider mixes
// its messages into longer responses.
func ClassifyFailure(raw string) FailureReason {
	lowered := strings.ToLower(raw)
	for kind, phrase := range denyListed {
		if strings.Contains(lowered, phrase) {
			return FailureReason{Kind: kind, Raw: raw}
		}
	}
	return FailureReason{Kind: FailureOther, Raw: raw}
}

// Refundable reports whether a component failing with this reason may be
// credited back. Deny-listed kinds are withheld to avoid double-granting
// value when the provider may have delivered anyway.
func (r FailureReason) Refundable() bool {
	return r.Kind == FailureOther
}
