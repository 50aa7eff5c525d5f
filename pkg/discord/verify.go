package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// ParsePublicKey decodes the hex application public key shown in the
// developer portal.
func ParsePublicKey(hexKey string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// VerifyInteraction checks the Ed25519 signature Discord puts on every
// interaction request: sign(timestamp + body).
func VerifyInteraction(key ed25519.PublicKey, signature, timestamp string, body []byte) error {
	if len(key) != ed25519.PublicKeySize {
		return ErrInvalidSignature
	}
	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}

	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)

	if !ed25519.Verify(key, msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}
