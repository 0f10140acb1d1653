package domain

import (
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// ResolveArtworkID maps the id encodings clients are known to hold onto the
// native key. Resolution order: native UUID (canonical or bare 32-char hex),
// then URL-safe base64 of the raw 16 bytes. Anything that fails every
// strategy resolves to ErrArtworkNotFound.
func ResolveArtworkID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrArtworkNotFound
	}

	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	// base64url, with or without padding
	if b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "=")); err == nil && len(b) == 16 {
		if id, err := uuid.FromBytes(b); err == nil {
			return id, nil
		}
	}

	return uuid.Nil, ErrArtworkNotFound
}
