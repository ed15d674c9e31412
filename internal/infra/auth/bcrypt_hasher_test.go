package auth

import (
	"testing"

	"promofinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // min cost keeps tests fast
	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("tacos-al-pastor")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "tacos-al-pastor", hash)

	assert.True(t, hasher.Check("tacos-al-pastor", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CheckGarbageHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}
