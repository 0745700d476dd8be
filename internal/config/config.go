package config

import (
	"fmt"
	"os"
	"path/filepath"

	"deckdrop/internal/common"
	"deckdrop/internal/security"
	"deckdrop/pkg/models"

	"gopkg.in/yaml.v3"
)

func GetConfigPath() string {
	// Check for environment variable first
	if configPath := os.Getenv("DECKDROP_CONFIG"); configPath != "" {
		return filepath.Dir(configPath)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".deckdrop")
}

func GetConfigFile() string {
	// Check for environment variable first
	if configFile := os.Getenv("DECKDROP_CONFIG"); configFile != "" {
		// Validate the path to prevent directory traversal
		cleaned, err := common.CleanPath(configFile)
		if err != nil {
			// Fall back to default if invalid
			return filepath.Join(GetConfigPath(), "config.yaml")
		}
		return cleaned
	}
	return filepath.Join(GetConfigPath(), "config.yaml")
}

func Load() (*models.Config, error) {
	configFile := GetConfigFile()

	// Validate the config file path
	cleanedPath, err := common.CleanPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("invalid config file path: %w", err)
	}

	// Check if config file exists
	if _, err := os.Stat(cleanedPath); os.IsNotExist(err) {
		return &models.Config{}, nil
	}

	data, err := os.ReadFile(cleanedPath) // #nosec G304 - path is validated
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config models.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// LoadSecure loads the configuration and resolves the warehouse password:
// inline ENC[...] values are decrypted, and a blank password falls back to
// the system keyring.
func LoadSecure() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	password, err := DecryptPassword(config.Snowflake.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt Snowflake password: %w", err)
	}
	config.Snowflake.Password = password

	if config.Snowflake.Password == "" {
		cm, err := security.NewCredentialManager()
		if err != nil {
			// Keyring unavailable; the password may still arrive via prompt
			return config, nil
		}
		if cred, err := cm.GetCredential(security.SnowflakePasswordCredential); err == nil {
			config.Snowflake.Password = cred.Value
		}
	}

	return config, nil
}

func Save(config *models.Config) error {
	configPath := GetConfigPath()
	if err := os.MkdirAll(configPath, common.DirPermissionSecure); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := GetConfigFile()

	// Never write the password in the clear
	out := *config
	password, err := EncryptPassword(out.Snowflake.Password)
	if err != nil {
		return fmt.Errorf("failed to encrypt Snowflake password: %w", err)
	}
	out.Snowflake.Password = password

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, common.FilePermissionSecure); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func Exists() bool {
	_, err := os.Stat(GetConfigFile())
	return err == nil
}
