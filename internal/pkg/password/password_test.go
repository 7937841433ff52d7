package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_SaltsIndependently(t *testing.T) {
	first, err := Hash("kisan-strong-password")
	assert.NoError(t, err)
	second, err := Hash("kisan-strong-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$2a$12$"))
}

func TestVerify_CorrectPassword(t *testing.T) {
	hash, err := Hash("kisan-strong-password")
	assert.NoError(t, err)

	assert.True(t, Verify("kisan-strong-password", hash))
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("kisan-strong-password")
	assert.NoError(t, err)

	assert.False(t, Verify("not-the-password", hash))
	assert.False(t, Verify("", hash))
}

func TestVerify_NotAHash(t *testing.T) {
	assert.False(t, Verify("anything", "plainly-not-a-bcrypt-hash"))
}
