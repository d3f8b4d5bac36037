package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// InviteTokenBytes is the entropy of an invitation token before encoding.
	// 32 random bytes make brute-forcing a token infeasible; the token is the
	// sole capability needed to redeem an invitation, so its entropy is the
	// primary security boundary.
	InviteTokenBytes = 32

	// InviteTokenLength is the encoded length: hex doubles the byte count.
	InviteTokenLength = InviteTokenBytes * 2
)

// GenerateInviteToken creates a cryptographically random invitation token,
// returned as 64 lowercase hex characters. The raw value is embedded in the
// redemption URL sent to the invitee; it is never reused.
func GenerateInviteToken() (string, error) {
	buf := make([]byte, InviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate invite token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IsInviteToken reports whether s has the exact shape of an invitation
// token: 64 lowercase hex characters. Handlers use it to reject malformed
// tokens before hitting the store.
func IsInviteToken(s string) bool {
	if len(s) != InviteTokenLength {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
