package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", 24*time.Hour)

	token, err := mgr.Generate("user-1", "alice@example.com", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.GetClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	mgr := NewJWTManager("secret-a", time.Hour)
	token, err := mgr.Generate("user-1", "a@b.c", "A")
	require.NoError(t, err)

	other := NewJWTManager("secret-b", time.Hour)
	_, err = other.GetClaims(token)
	assert.Error(t, err)
}

func TestJWTManager_Expired(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)
	token, err := mgr.Generate("user-1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = mgr.GetClaims(token)
	assert.Error(t, err)
}

func TestJWTManager_Garbage(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)
	_, err := mgr.GetClaims("not-a-token")
	assert.Error(t, err)
}
