package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	in := writeFile(t, "words.json", sampleWordList)

	_, err := executeCommand(t, nil, "import", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestImportCommand_InvalidWordList(t *testing.T) {
	in := writeFile(t, "words.json", `{"words": "nope"}`)

	_, err := executeCommand(t, nil, "import", "--in", in, "--db-url", "postgres://unused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid word list")
}

func TestLoadAdminAuth(t *testing.T) {
	t.Run("missing secret disables admin", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		jwtConfig, passwordConfig := loadAdminAuth()
		assert.Nil(t, jwtConfig)
		assert.Nil(t, passwordConfig)
	})

	t.Run("missing admin hash disables admin", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "a-test-secret-of-sufficient-length")
		t.Setenv("BCRYPT_COST", "10")
		t.Setenv("ADMIN_PASSWORD_HASH", "")
		jwtConfig, passwordConfig := loadAdminAuth()
		assert.Nil(t, jwtConfig)
		assert.Nil(t, passwordConfig)
	})
}
