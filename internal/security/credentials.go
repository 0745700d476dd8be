package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"deckdrop/internal/common"

	"github.com/zalando/go-keyring"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// Keyring service name
	keyringService = "deckdrop"
	// Salt for key derivation
	saltSize = 32
	// Number of iterations for PBKDF2
	pbkdf2Iterations = 100000
	// Key size for AES-256
	keySize = 32
)

// SnowflakePasswordCredential is the name under which the warehouse
// password is stored.
const SnowflakePasswordCredential = "snowflake_password"

// Credential is one stored secret.
type Credential struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// CredentialManager keeps secrets in the system keyring where one is
// reachable, and falls back to AES-GCM encrypted files under
// ~/.deckdrop/credentials on headless hosts.
type CredentialManager struct {
	useKeyring bool
	masterKey  []byte
}

// NewCredentialManager creates a new credential manager
func NewCredentialManager() (*CredentialManager, error) {
	cm := &CredentialManager{
		useKeyring: isKeyringAvailable(),
	}

	// File storage needs the master key up front
	if !cm.useKeyring {
		key, err := cm.loadOrCreateMasterKey()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize master key: %w", err)
		}
		cm.masterKey = key
	}

	return cm, nil
}

// StoreCredential persists a named secret
func (cm *CredentialManager) StoreCredential(name, credType, value string) error {
	if cm.useKeyring {
		if err := keyring.Set(keyringService, name, value); err != nil {
			return fmt.Errorf("failed to store in keyring: %w", err)
		}
		return nil
	}

	encrypted, err := cm.encrypt(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}

	data, err := json.MarshalIndent(Credential{Name: name, Type: credType, Value: encrypted}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cm.credentialsDir(), common.DirPermissionSecure); err != nil {
		return err
	}

	path, err := common.ValidatePath(cm.credentialPath(name), cm.credentialsDir())
	if err != nil {
		return fmt.Errorf("invalid credential file path: %w", err)
	}
	return os.WriteFile(path, data, common.FilePermissionSecure)
}

// GetCredential retrieves a stored secret by name
func (cm *CredentialManager) GetCredential(name string) (*Credential, error) {
	if cm.useKeyring {
		value, err := keyring.Get(keyringService, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get from keyring: %w", err)
		}
		return &Credential{Name: name, Value: value}, nil
	}

	path, err := common.ValidatePath(cm.credentialPath(name), cm.credentialsDir())
	if err != nil {
		return nil, fmt.Errorf("invalid credential file path: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is validated
	if err != nil {
		return nil, err
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, err
	}

	value, err := cm.decrypt(cred.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credential: %w", err)
	}
	cred.Value = value

	return &cred, nil
}

// DeleteCredential removes a stored secret
func (cm *CredentialManager) DeleteCredential(name string) error {
	if cm.useKeyring {
		return keyring.Delete(keyringService, name)
	}
	return os.Remove(cm.credentialPath(name))
}

func (cm *CredentialManager) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(cm.masterKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (cm *CredentialManager) decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(cm.masterKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, encryptedData := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, encryptedData, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// loadOrCreateMasterKey returns the file-storage key, deriving and
// persisting a machine-bound key on first use.
func (cm *CredentialManager) loadOrCreateMasterKey() ([]byte, error) {
	dir := cm.credentialsDir()

	keyPath, err := common.ValidatePath(filepath.Join(dir, ".master"), dir)
	if err != nil {
		return nil, fmt.Errorf("invalid master key path: %w", err)
	}

	data, err := os.ReadFile(keyPath) // #nosec G304 - path is validated
	if err == nil {
		// File holds salt followed by key
		if len(data) != saltSize+keySize {
			return nil, fmt.Errorf("invalid master key file size")
		}
		return data[saltSize:], nil
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	key := pbkdf2.Key([]byte(machineID()), salt, pbkdf2Iterations, keySize, sha256.New)

	if err := os.MkdirAll(dir, common.DirPermissionSecure); err != nil {
		return nil, err
	}
	if err := os.WriteFile(keyPath, append(salt, key...), common.FilePermissionSecure); err != nil {
		return nil, err
	}

	return key, nil
}

func (cm *CredentialManager) credentialsDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".deckdrop", "credentials")
}

func (cm *CredentialManager) credentialPath(name string) string {
	return filepath.Join(cm.credentialsDir(), name+".cred")
}

func isKeyringAvailable() bool {
	// Explicit opt-out
	if os.Getenv("DECKDROP_USE_KEYCHAIN") == "false" {
		return false
	}

	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	case "linux":
		// The Secret Service backend needs a desktop session
		if os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" {
			return true
		}
	}
	return false
}

// machineID derives a stable host identifier for key derivation
func machineID() string {
	hostname, _ := os.Hostname()
	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}

	hash := sha256.Sum256([]byte(fmt.Sprintf("%s-%s-%s-%s", hostname, user, runtime.GOOS, runtime.GOARCH)))
	return base64.StdEncoding.EncodeToString(hash[:])
}
