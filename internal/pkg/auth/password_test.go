package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	assert.True(t, CheckPassword(hash, "Passw0rd!"))
	assert.False(t, CheckPassword(hash, "passw0rd!"))
	assert.False(t, CheckPassword("", "Passw0rd!"))
}
