package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("P@ssw0rd1")
	require.NoError(t, err)

	assert.NotEqual(t, "P@ssw0rd1", digest)
	assert.True(t, strings.HasPrefix(digest, "$2"))
	assert.True(t, Verify("P@ssw0rd1", digest))
}

func TestVerify_WrongPassword(t *testing.T) {
	digest, err := Hash("correct horse")
	require.NoError(t, err)
	assert.False(t, Verify("battery staple", digest))
}

func TestVerify_GarbageDigest(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-digest"))
}

func TestHash_SaltedPerCall(t *testing.T) {
	d1, err := Hash("same input")
	require.NoError(t, err)
	d2, err := Hash("same input")
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}
