package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSyncKeyVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sync-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewSyncKeyVerifier(string(hash))
	assert.True(t, v.Verify("sync-secret"))
	assert.False(t, v.Verify("wrong"))
	assert.False(t, v.Verify(""))
}

func TestSyncKeyVerifierDisabledWithoutHash(t *testing.T) {
	v := NewSyncKeyVerifier("")
	assert.False(t, v.Verify("anything"))
}
