package security

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileBackedManager forces the encrypted-file fallback so tests never
// touch a real keyring.
func newFileBackedManager(t *testing.T) *CredentialManager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DECKDROP_USE_KEYCHAIN", "false")

	cm, err := NewCredentialManager()
	require.NoError(t, err)
	require.False(t, cm.useKeyring)
	require.NotNil(t, cm.masterKey)
	return cm
}

func TestStoreAndGetCredential(t *testing.T) {
	cm := newFileBackedManager(t)

	err := cm.StoreCredential(SnowflakePasswordCredential, "password", "secret123")
	require.NoError(t, err)

	cred, err := cm.GetCredential(SnowflakePasswordCredential)
	require.NoError(t, err)
	assert.Equal(t, SnowflakePasswordCredential, cred.Name)
	assert.Equal(t, "password", cred.Type)
	assert.Equal(t, "secret123", cred.Value)
}

func TestGetCredentialMissing(t *testing.T) {
	cm := newFileBackedManager(t)

	_, err := cm.GetCredential("never-stored")
	assert.Error(t, err)
}

func TestDeleteCredential(t *testing.T) {
	cm := newFileBackedManager(t)

	err := cm.StoreCredential("temp-cred", "password", "temp123")
	require.NoError(t, err)

	err = cm.DeleteCredential("temp-cred")
	require.NoError(t, err)

	_, err = cm.GetCredential("temp-cred")
	assert.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	cm := newFileBackedManager(t)

	plaintext := "sensitive data"

	encrypted, err := cm.encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)
	assert.NotEmpty(t, encrypted)

	decrypted, err := cm.decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestMasterKeyStableAcrossInstances(t *testing.T) {
	cm1 := newFileBackedManager(t)

	// Same HOME, so the second instance must load the persisted key
	cm2, err := NewCredentialManager()
	require.NoError(t, err)
	assert.Equal(t, cm1.masterKey, cm2.masterKey)
}

func TestCredentialFilePermissions(t *testing.T) {
	cm := newFileBackedManager(t)

	err := cm.StoreCredential("perm-test", "password", "secret")
	require.NoError(t, err)

	info, err := os.Stat(cm.credentialPath("perm-test"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestTamperedCredentialRejected(t *testing.T) {
	cm := newFileBackedManager(t)

	err := cm.StoreCredential("tamper-test", "password", "secret")
	require.NoError(t, err)

	// Replace the stored ciphertext with garbage; GCM must refuse to open it
	path := cm.credentialPath("tamper-test")
	tampered := []byte(`{"name":"tamper-test","type":"password","value":"bm90IHZhbGlkIGNpcGhlcnRleHQgYXQgYWxs"}`)
	err = os.WriteFile(path, tampered, 0600)
	require.NoError(t, err)

	_, err = cm.GetCredential("tamper-test")
	assert.Error(t, err)
}

func TestKeyringDisabledByEnv(t *testing.T) {
	t.Setenv("DECKDROP_USE_KEYCHAIN", "false")
	assert.False(t, isKeyringAvailable())
}
