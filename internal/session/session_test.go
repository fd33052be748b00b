package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("tok-123"))
	require.NoError(t, s.SetTenant("tenant-abc"))

	// Reopen from disk.
	s2, err := NewStore(path)
	require.NoError(t, err)
	ctx := s2.Context()
	assert.Equal(t, "tok-123", ctx.Token)
	assert.Equal(t, "tenant-abc", ctx.TenantID)
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, "", s.Get(KeyToken))
}

func TestRequireTenant(t *testing.T) {
	assert.ErrorIs(t, Context{}.RequireTenant(), ErrMissingTenant)
	assert.NoError(t, Context{TenantID: "t1"}.RequireTenant())
}

func TestExpired(t *testing.T) {
	now := time.Now()

	signed := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		})
		s, err := tok.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return s
	}

	assert.True(t, Context{Token: signed(now.Add(-time.Hour))}.Expired(now))
	assert.False(t, Context{Token: signed(now.Add(time.Hour))}.Expired(now))
	assert.False(t, Context{Token: ""}.Expired(now))
	assert.False(t, Context{Token: "not-a-jwt"}.Expired(now))
}
