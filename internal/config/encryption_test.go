package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptPassword(t *testing.T) {
	t.Setenv("DECKDROP_ENCRYPTION_KEY", "unit-test-key")

	tests := []struct {
		name     string
		password string
	}{
		{"simple", "secret"},
		{"with symbols", "p@ssw0rd!#$%"},
		{"unicode", "пароль密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := EncryptPassword(tt.password)
			require.NoError(t, err)
			assert.True(t, IsEncrypted(encrypted))
			assert.NotContains(t, encrypted, tt.password)

			decrypted, err := DecryptPassword(encrypted)
			require.NoError(t, err)
			assert.Equal(t, tt.password, decrypted)
		})
	}
}

func TestEncryptEmptyPassword(t *testing.T) {
	encrypted, err := EncryptPassword("")
	assert.NoError(t, err)
	assert.Empty(t, encrypted)
}

func TestEncryptAlreadyEncrypted(t *testing.T) {
	t.Setenv("DECKDROP_ENCRYPTION_KEY", "unit-test-key")

	encrypted, err := EncryptPassword("secret")
	require.NoError(t, err)

	// Encrypting twice must not double wrap
	again, err := EncryptPassword(encrypted)
	require.NoError(t, err)
	assert.Equal(t, encrypted, again)
}

func TestDecryptPlaintextPassthrough(t *testing.T) {
	decrypted, err := DecryptPassword("not-encrypted")
	assert.NoError(t, err)
	assert.Equal(t, "not-encrypted", decrypted)
}

func TestDecryptCorruptedCiphertext(t *testing.T) {
	t.Setenv("DECKDROP_ENCRYPTION_KEY", "unit-test-key")

	_, err := DecryptPassword("ENC[not-valid-base64!!!]")
	assert.Error(t, err)

	_, err = DecryptPassword("ENC[YWJj]") // valid base64, too short
	assert.Error(t, err)
}

func TestIsEncrypted(t *testing.T) {
	assert.True(t, IsEncrypted("ENC[YWJj]"))
	assert.False(t, IsEncrypted(""))
	assert.False(t, IsEncrypted("plain"))
	assert.False(t, IsEncrypted("ENC[missing-suffix"))
}
