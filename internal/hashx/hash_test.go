package hashx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_DigestIsNotPlaintext(t *testing.T) {
	h := NewBcryptHasher()

	d, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, d)
	assert.NotEqual(t, "secret1", d)
}

func TestHash_SaltMakesDigestsDistinct(t *testing.T) {
	h := NewBcryptHasher()

	d1, err := h.Hash("secret1")
	require.NoError(t, err)
	d2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)

	for _, d := range []string{d1, d2} {
		ok, err := h.Verify("secret1", d)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerify_WrongPasswordIsFalseNotError(t *testing.T) {
	h := NewBcryptHasher()

	d, err := h.Hash("secret1")
	require.NoError(t, err)

	ok, err := h.Verify("wrongpw", d)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_MalformedDigestIsError(t *testing.T) {
	h := NewBcryptHasher()

	ok, err := h.Verify("secret1", "not-a-bcrypt-digest")
	require.Error(t, err)
	assert.False(t, ok)
}
