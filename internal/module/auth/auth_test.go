package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	require.NoError(t, validatePasswordStrength("estagio2026"))

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "abc123"},
		{"letters only", "senhasegura"},
		{"digits only", "12345678"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, validatePasswordStrength(tc.password))
		})
	}
}
