package generator_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"pennyledger/pkg/generator"
)

func TestNewToken(t *testing.T) {
	token, err := generator.NewToken()
	assert.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	assert.NoError(t, err)
	assert.Len(t, raw, generator.TokenBytes)
}

func TestNewToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := generator.NewToken()
		assert.NoError(t, err)
		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}

func TestHashToken(t *testing.T) {
	hash := generator.HashToken("some-token")

	assert.Len(t, hash, 64) // sha256 hex
	assert.Equal(t, hash, generator.HashToken("some-token"))
	assert.NotEqual(t, hash, generator.HashToken("some-other-token"))
	assert.NotEqual(t, "some-token", hash)
}
