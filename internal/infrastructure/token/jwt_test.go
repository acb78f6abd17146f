package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", 3600)

	signed, err := manager.Generate("user-demo-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	uid, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-demo-123", uid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", 3600).Generate("user-demo-123")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 3600).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -1)

	signed, err := manager.Generate("user-demo-123")
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", 3600)

	_, err := manager.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
