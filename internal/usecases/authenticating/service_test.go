package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims domain.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(config.Auth{Secret: testSecret})

	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), domain.Claims{
		Email: "ana@example.com",
		Role:  domain.RoleAuthenticated,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "b6f1c6a2-1111-4f3e-9a9e-2f7c1c2d3e4f",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := service.ValidateToken(valid)
	require.NoError(t, err)
	assert.Equal(t, "b6f1c6a2-1111-4f3e-9a9e-2f7c1c2d3e4f", claims.UserID())
	assert.Equal(t, "ana@example.com", claims.Email)

	tests := []struct {
		name  string
		token string
		err   error
		code  string
	}{
		{
			name:  "empty token",
			token: "",
			err:   ErrMissingToken,
			code:  apiErrors.ErrMissingToken,
		},
		{
			name:  "garbage",
			token: "not.a.jwt",
			err:   ErrInvalidToken,
			code:  apiErrors.ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("other"), domain.Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
			}),
			err:  ErrInvalidToken,
			code: apiErrors.ErrInvalidToken,
		},
		{
			name: "expired",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), domain.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}),
			err:  ErrExpiredToken,
			code: apiErrors.ErrExpiredToken,
		},
		{
			name: "other hmac algorithm",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), domain.Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
			}),
			err:  ErrInvalidToken,
			code: apiErrors.ErrInvalidToken,
		},
		{
			name:  "no subject",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), domain.Claims{Email: "x@y.z"}),
			err:   ErrMissingSubject,
			code:  apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.code, authErr.Code)
		})
	}
}

func TestService_ValidateTokenWithoutSecret(t *testing.T) {
	_, err := NewService(config.Auth{}).ValidateToken("a.b.c")

	assert.ErrorIs(t, err, ErrMissingSecret)
}
