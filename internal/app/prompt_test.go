package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain address",
			input:    "admin@example.com\n",
			expected: "admin@example.com",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  admin@example.com  \n",
			expected: "admin@example.com",
		},
		{
			name:     "missing trailing newline",
			input:    "admin@example.com",
			expected: "admin@example.com",
		},
		{
			name:     "empty line",
			input:    "\n",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := promptEmail(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, email)
		})
	}
}

func TestPromptPassword(t *testing.T) {
	originalReadPassword := readPassword
	defer func() { readPassword = originalReadPassword }()

	readPassword = func(_ int) ([]byte, error) {
		return []byte("secret"), nil
	}

	password, err := promptPassword()
	require.NoError(t, err)
	assert.Equal(t, "secret", password)
}

func TestPromptPassword_Error(t *testing.T) {
	originalReadPassword := readPassword
	defer func() { readPassword = originalReadPassword }()

	errNoTerminal := errors.New("inappropriate ioctl for device")
	readPassword = func(_ int) ([]byte, error) {
		return nil, errNoTerminal
	}

	_, err := promptPassword()
	require.ErrorIs(t, err, errNoTerminal)
}
