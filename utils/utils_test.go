package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("hello"))
	assert.NotContains(t, Sanitize(`<script>alert(1)</script>ok`), "script")
	assert.Equal(t, "feeling better today", Sanitize("feeling better today"))
}
