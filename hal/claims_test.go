package hal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClaims_ZeroValueIsUsable(t *testing.T) {
	var c Claims
	require.False(t, c.Claimed("arm"))
	require.Empty(t, c.List())
	require.Zero(t, c.Len())

	require.NoError(t, c.Claim("arm"))
	require.True(t, c.Claimed("arm"))
}

func TestClaims_SetSemantics(t *testing.T) {
	var c Claims
	require.NoError(t, c.Claim("arm"))
	require.NoError(t, c.Claim("base"))
	require.NoError(t, c.Claim("arm"))

	require.Equal(t, 2, c.Len())
	require.Equal(t, []string{"arm", "base"}, c.List(), "List is sorted")
}

func TestClaims_Clear(t *testing.T) {
	var c Claims
	require.NoError(t, c.Claim("arm"))
	c.Clear()

	require.Zero(t, c.Len())
	require.False(t, c.Claimed("arm"))

	// Clearing twice is fine, and the set stays usable.
	c.Clear()
	require.NoError(t, c.Claim("base"))
	require.Equal(t, []string{"base"}, c.List())
}

func TestClaims_BacksAClaimingRegistry(t *testing.T) {
	var c Claims
	opts := quietOptions()
	opts.Policy = Claiming
	opts.Owner = &c
	r := New[jointHandle]("joint command", opts)

	r.Register(jointHandle{name: "arm", value: 1})
	_, err := r.Get("arm")
	require.NoError(t, err)
	_, err = r.Get("arm")
	require.NoError(t, err)

	require.Equal(t, []string{"arm"}, c.List())
}
