package identity

import "strings"

// minPhoneDigits is the shortest digit string treated as a full phone number
// for the suffix fallback.
const minPhoneDigits = 9

// NormalizeJID reduces a sender identifier to its user part: everything after
// the address separator and any :device suffix is dropped.
func NormalizeJID(jid string) string {
	if at := strings.IndexByte(jid, '@'); at >= 0 {
		jid = jid[:at]
	}
	if colon := strings.IndexByte(jid, ':'); colon >= 0 {
		jid = jid[:colon]
	}
	return jid
}

// Digits strips everything but 0-9.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolver decides owner exemption for a configured owner number.
type Resolver struct {
	ownerDigits string
}

func NewResolver(ownerNumber string) *Resolver {
	return &Resolver{ownerDigits: Digits(ownerNumber)}
}

// IsOwner matches a sender against the owner number using three fallbacks:
// exact digit match, containment of the owner number anywhere in the raw
// identifier, and suffix match for full-length numbers.
func (r *Resolver) IsOwner(senderJID string) bool {
	if r.ownerDigits == "" {
		return false
	}
	sender := Digits(NormalizeJID(senderJID))
	if sender == r.ownerDigits {
		return true
	}
	if strings.Contains(senderJID, r.ownerDigits) {
		return true
	}
	if len(sender) >= minPhoneDigits && strings.HasSuffix(sender, r.ownerDigits) {
		return true
	}
	return false
}
