package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonBlockingReader_ReadLine(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValue string
		expectError   bool
	}{
		{
			name:          "successful read",
			input:         "juan@example.com\n",
			expectedValue: "juan@example.com",
		},
		{
			name:          "read with extra whitespace",
			input:         "  Bacsil  \n",
			expectedValue: "Bacsil",
		},
		{
			name:          "empty line",
			input:         "\n",
			expectedValue: "",
		},
		{
			name:          "last line without newline",
			input:         "San Fernando",
			expectedValue: "San Fernando",
		},
		{
			name:        "no input",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nbr := NewNonBlockingReader(strings.NewReader(tt.input))

			result, err := nbr.ReadLine(context.Background())
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedValue, result)
			}
		})
	}
}

func TestNonBlockingReader_ContextCancellation(t *testing.T) {
	t.Run("immediate cancellation", func(t *testing.T) {
		nbr := NewNonBlockingReader(strings.NewReader(""))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := nbr.ReadLine(ctx)
		assert.Equal(t, ErrInputCancelled, err)
	})

	t.Run("cancellation during read", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pr.Close() }()
		defer func() { _ = pw.Close() }()

		nbr := NewNonBlockingReader(pr)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := nbr.ReadLine(ctx)
		assert.Equal(t, ErrInputCancelled, err)
	})
}

func TestNonBlockingReader_Ask(t *testing.T) {
	nbr := NewNonBlockingReader(strings.NewReader("juan@example.com\n\n"))
	var out bytes.Buffer

	email, err := nbr.Ask(context.Background(), &out, "Email", "")
	require.NoError(t, err)
	assert.Equal(t, "juan@example.com", email)
	assert.Contains(t, out.String(), "Email")

	municipality, err := nbr.Ask(context.Background(), &out, "Municipality", "San Fernando")
	require.NoError(t, err)
	assert.Equal(t, "San Fernando", municipality)
	assert.Contains(t, out.String(), "[San Fernando]")
}
