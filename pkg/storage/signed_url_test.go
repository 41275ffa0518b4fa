package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedURLRoundtrip(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)

	token, expiresAt, err := signer.Generate("photo.jpg")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	name, parsedExpiry, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", name)
	assert.Equal(t, expiresAt.Unix(), parsedExpiry.Unix())
}

func TestSignedURLRejectsTampering(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)

	token, _, err := signer.Generate("photo.jpg")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// flip the signature
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("0", len(parts[2]))
	_, _, err = signer.Parse(tampered)
	require.Error(t, err)

	// swap in a different file name
	other, _, err := signer.Generate("other.png")
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")
	mixed := parts[0] + "." + otherParts[1] + "." + parts[2]
	_, _, err = signer.Parse(mixed)
	require.Error(t, err)
}

func TestSignedURLRejectsWrongSecret(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Generate("photo.jpg")
	require.NoError(t, err)

	other := NewSignedURLSigner("different", time.Hour)
	_, _, err = other.Parse(token)
	require.Error(t, err)
}

func TestSignedURLExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	signer.ttl = -time.Minute

	token, _, err := signer.Generate("photo.jpg")
	require.NoError(t, err)

	_, _, err = signer.Parse(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestSignedURLRejectsGarbage(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)

	_, _, err := signer.Parse("not-a-token")
	require.Error(t, err)

	_, _, err = signer.Parse("abc.def.ghi")
	require.Error(t, err)
}

func TestSignedURLRequiresNameAndSecret(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	_, _, err := signer.Generate("")
	require.Error(t, err)

	unsigned := NewSignedURLSigner("", time.Hour)
	_, _, err = unsigned.Generate("photo.jpg")
	require.Error(t, err)
}
