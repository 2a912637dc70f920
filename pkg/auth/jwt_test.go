package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name           string
		userID         int
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			userID:         123,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			userID:         123,
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
		userID      int
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
			userID:      42,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(42, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Token signed with a different secret",
			setup: func() string {
				other := NewJWTService("other-secret")
				token, _ := other.GenerateJWT(42, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Garbage token",
			setup: func() string {
				return "not-a-token"
			},
			expectError: true,
		},
		{
			name: "Zero user id is rejected",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(0, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, claims.UserID)
			}
		})
	}
}
