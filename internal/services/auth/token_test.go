package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	_, err := NewService("")
	assert.ErrorIs(t, err, ErrNoSecret)

	svc, err := NewService("s3cret")
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestService_ValidateToken(t *testing.T) {
	svc, err := NewService("s3cret")
	require.NoError(t, err)
	other, err := NewService("other")
	require.NoError(t, err)

	valid, err := svc.IssueToken("ci", time.Hour, ScopeRevalidate)
	require.NoError(t, err)
	noExpiry, err := svc.IssueToken("ci", 0, ScopeRevalidate)
	require.NoError(t, err)
	noScope, err := svc.IssueToken("ci", time.Hour)
	require.NoError(t, err)
	wrongKey, err := other.IssueToken("ci", time.Hour, ScopeRevalidate)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := svc.IssueToken("ci", time.Hour, ScopeRevalidate)
	require.NoError(t, err)
	svc.now = time.Now

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Scopes: []string{ScopeRevalidate}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"valid token", valid, nil},
		{"token without expiry", noExpiry, nil},
		{"missing scope", noScope, ErrUnauthorized},
		{"signed with another secret", wrongKey, ErrInvalidToken},
		{"expired", expired, ErrTokenExpired},
		{"unsigned", unsigned, ErrInvalidToken},
		{"garbage", "not-a-token", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token, ScopeRevalidate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ci", claims.Subject)
			assert.True(t, claims.HasScope(ScopeRevalidate))
		})
	}
}
