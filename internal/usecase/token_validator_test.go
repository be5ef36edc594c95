//go:build unit

package usecase

import (
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenValidator(t *testing.T) {
	const secret = "test-secret"
	svc := jwt.NewService(secret, time.Hour, "")
	validator := NewTokenValidator(svc)
	guestID := uuid.New()
	future := gojwt.NewNumericDate(time.Now().Add(time.Hour))

	testCases := []struct {
		name     string
		token    func(t *testing.T) string
		wantID   uuid.UUID
		wantRole user.Role
		wantErr  error
	}{
		{
			name: "guest token",
			token: func(t *testing.T) string {
				tok, err := svc.GenerateToken(guestID, user.RoleGuest)
				require.NoError(t, err)
				return tok
			},
			wantID:   guestID,
			wantRole: user.RoleGuest,
		},
		{
			name: "unknown role",
			token: func(t *testing.T) string {
				return signed(t, secret, jwt.Claims{UserID: guestID, Role: "superuser", RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: future}})
			},
			wantErr: user.ErrInvalidRole,
		},
		{
			name: "missing user id",
			token: func(t *testing.T) string {
				return signed(t, secret, jwt.Claims{Role: "guest", RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: future}})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "foreign secret",
			token: func(t *testing.T) string {
				return signed(t, "other-secret", jwt.Claims{UserID: guestID, Role: "guest", RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: future}})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not-a-token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, role, err := validator.ValidateToken(tc.token(t))
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantRole, role)
		})
	}
}
