package shared

import "golang.org/x/crypto/bcrypt"

// SyncKeyVerifier validates the static key presented by the offline-sync
// agent. Only the bcrypt hash of the key is kept in configuration.
type SyncKeyVerifier struct {
	hash []byte
}

// NewSyncKeyVerifier constructs a verifier from a bcrypt hash. An empty
// hash yields a verifier that rejects every key.
func NewSyncKeyVerifier(hash string) *SyncKeyVerifier {
	return &SyncKeyVerifier{hash: []byte(hash)}
}

// Verify reports whether the presented key matches the configured hash.
func (v *SyncKeyVerifier) Verify(key string) bool {
	if v == nil || len(v.hash) == 0 || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(key)) == nil
}
