package admin

import (
	"testing"

	"myshop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid credentials",
			email:    "admin@demo.com",
			password: "admin123",
			wantErr:  false,
		},
		{
			name:     "Wrong password",
			email:    "admin@demo.com",
			password: "nope",
			wantErr:  true,
		},
		{
			name:     "Wrong email",
			email:    "other@demo.com",
			password: "admin123",
			wantErr:  true,
		},
		{
			name:     "Empty credentials",
			email:    "",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := NewSessions("admin@demo.com", "admin123", zerolog.Nop())

			token, err := sessions.Login(tt.email, tt.password)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidCredentials)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.True(t, sessions.Valid(token))
		})
	}
}

func TestSessions_Logout(t *testing.T) {
	sessions := NewSessions("admin@demo.com", "admin123", zerolog.Nop())

	token, err := sessions.Login("admin@demo.com", "admin123")
	require.NoError(t, err)
	require.True(t, sessions.Valid(token))

	sessions.Logout(token)
	assert.False(t, sessions.Valid(token))

	// Unknown token is a no-op
	sessions.Logout("not-a-token")
}

func TestSessions_Valid_UnknownToken(t *testing.T) {
	sessions := NewSessions("admin@demo.com", "admin123", zerolog.Nop())
	assert.False(t, sessions.Valid("made-up"))
}

func TestSessions_IndependentTokens(t *testing.T) {
	sessions := NewSessions("admin@demo.com", "admin123", zerolog.Nop())

	first, err := sessions.Login("admin@demo.com", "admin123")
	require.NoError(t, err)
	second, err := sessions.Login("admin@demo.com", "admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	sessions.Logout(first)
	assert.False(t, sessions.Valid(first))
	assert.True(t, sessions.Valid(second))
}
