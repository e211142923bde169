package policy

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CanonicalJSON re-encodes a bundle document with sorted object keys
// and minimal separators. Any two processes encoding the same bundle
// produce byte-identical output, so the SHA-256 digest is stable
// across processes and implementations.
func CanonicalJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	// encoding/json sorts map keys and emits no extra whitespace.
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	return out, nil
}

// Digest returns the hex SHA-256 of the canonical encoding of raw.
func Digest(raw []byte) (string, error) {
	canonical, err := CanonicalJSON(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// BundleDigest canonicalizes and hashes an already-decoded bundle.
func BundleDigest(bundle *Bundle) (string, error) {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return "", fmt.Errorf("bundle digest: %w", err)
	}
	return Digest(raw)
}
