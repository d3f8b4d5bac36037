package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateInviteToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateInviteToken()
	require.NoError(t, err)
	require.Len(t, token, InviteTokenLength)
	require.True(t, IsInviteToken(token))
}

func TestGenerateInviteTokenIsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		token, err := GenerateInviteToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token collision: %s", token)
		seen[token] = struct{}{}
	}
}

func TestIsInviteToken(t *testing.T) {
	t.Parallel()

	valid, err := GenerateInviteToken()
	require.NoError(t, err)

	cases := map[string]bool{
		valid:                          true,
		"":                             false,
		"abc123":                       false,
		valid[:InviteTokenLength-1]:    false,
		valid + "0":                    false,
		valid[:InviteTokenLength-1] + "G": false,
		valid[:InviteTokenLength-1] + "F": false, // uppercase hex is rejected
	}
	for input, want := range cases {
		require.Equal(t, want, IsInviteToken(input), "input %q", input)
	}
}
