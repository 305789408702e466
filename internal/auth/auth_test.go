package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestGenerateAccessToken(t *testing.T) {
	t.Run("Successfully generate access token", func(t *testing.T) {
		token, err := GenerateAccessToken("u-admin-001", "admin@example.com", "admin", testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateAccessToken("u-admin-001", "admin@example.com", "admin", "")

		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})

	t.Run("Token contains correct claims", func(t *testing.T) {
		token, err := GenerateAccessToken("u-staff-001", "staff@example.com", "staff", testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		assert.Equal(t, "u-staff-001", claims.UserID)
		assert.Equal(t, "u-staff-001", claims.Subject)
		assert.Equal(t, "staff@example.com", claims.Email)
		assert.Equal(t, "staff", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
		assert.Equal(t, jwtIssuer, claims.Issuer)
		assert.Contains(t, claims.Audience, jwtAudience)
	})
}

func TestGenerateTokens(t *testing.T) {
	t.Run("Successfully generate both tokens", func(t *testing.T) {
		access, refresh, err := GenerateTokens("u-admin-001", "admin@example.com", "admin", "access-secret", "refresh-secret")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.NotEqual(t, access, refresh)
	})

	t.Run("Fail with empty refresh secret", func(t *testing.T) {
		access, refresh, err := GenerateTokens("u-admin-001", "admin@example.com", "admin", "access-secret", "")

		assert.Error(t, err)
		assert.Empty(t, access)
		assert.Empty(t, refresh)
	})
}

func expiredToken(t *testing.T, tokenType string) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	claims := &JWTClaims{
		UserID:    "u-admin-001",
		Email:     "admin@example.com",
		Role:      "admin",
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-AccessTokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	valid, err := GenerateAccessToken("u-admin-001", "admin@example.com", "admin", testSecret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"empty secret", valid, "", ErrEmptyJWTSecret},
		{"wrong secret", valid, "wrong-secret", nil},
		{"malformed", "invalid.token.format", testSecret, nil},
		{"expired", expiredToken(t, TokenTypeAccess), testSecret, ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)

			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			}
			assert.Nil(t, claims)
		})
	}

	t.Run("valid", func(t *testing.T) {
		claims, err := ValidateToken(valid, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "u-admin-001", claims.UserID)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("Successfully refresh access token", func(t *testing.T) {
		refresh, err := GenerateRefreshToken("u-admin-001", "admin@example.com", "admin", testSecret)
		require.NoError(t, err)

		access, claims, err := RefreshAccessToken(refresh, testSecret, testSecret)
		require.NoError(t, err)

		accessClaims, err := ValidateToken(access, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "u-admin-001", claims.UserID)
		assert.Equal(t, TokenTypeAccess, accessClaims.TokenType)
	})

	t.Run("Fail with access token instead of refresh token", func(t *testing.T) {
		access, err := GenerateAccessToken("u-admin-001", "admin@example.com", "admin", testSecret)
		require.NoError(t, err)

		newAccess, claims, err := RefreshAccessToken(access, testSecret, testSecret)

		assert.Equal(t, ErrInvalidTokenType, err)
		assert.Empty(t, newAccess)
		assert.Nil(t, claims)
	})

	t.Run("Fail with expired refresh token", func(t *testing.T) {
		newAccess, claims, err := RefreshAccessToken(expiredToken(t, TokenTypeRefresh), testSecret, testSecret)

		assert.Equal(t, ErrTokenExpired, err)
		assert.Empty(t, newAccess)
		assert.Nil(t, claims)
	})
}

func TestTokenExpiration(t *testing.T) {
	access, refresh, err := GenerateTokens("u-admin-001", "admin@example.com", "admin", testSecret, testSecret)
	require.NoError(t, err)

	accessClaims, err := ValidateToken(access, testSecret)
	require.NoError(t, err)
	refreshClaims, err := ValidateToken(refresh, testSecret)
	require.NoError(t, err)

	assert.Less(t, accessClaims.ExpiresAt.Time.Sub(time.Now().Add(AccessTokenTTL)).Abs(), 2*time.Second)
	assert.Less(t, refreshClaims.ExpiresAt.Time.Sub(time.Now().Add(RefreshTokenTTL)).Abs(), 2*time.Second)
}
