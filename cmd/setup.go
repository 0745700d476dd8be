package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"deckdrop/internal/account"
	"deckdrop/internal/config"
	"deckdrop/internal/security"
	"deckdrop/internal/ui"
	"deckdrop/pkg/models"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Initial configuration setup",
	Run:   runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) {
	ui.ShowLogo()
	fmt.Println("🚀 Setting up DeckDrop CLI...")
	fmt.Println()

	// Check if config already exists
	if config.Exists() {
		var overwrite bool
		prompt := &survey.Confirm{
			Message: "Configuration already exists. Do you want to overwrite it?",
			Default: false,
		}
		survey.AskOne(prompt, &overwrite)
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return
		}
	}

	cfg := &models.Config{}

	// Collect Snowflake credentials
	fmt.Println("📄 Snowflake Configuration")
	fmt.Println("-------------------------")

	snowflakeQs := []*survey.Question{
		{
			Name: "account",
			Prompt: &survey.Input{
				Message: "Snowflake Account (e.g., xy12345.us-east-1):",
			},
			Validate: survey.Required,
		},
		{
			Name: "username",
			Prompt: &survey.Input{
				Message: "Username:",
			},
			Validate: survey.Required,
		},
		{
			Name: "password",
			Prompt: &survey.Password{
				Message: "Password:",
			},
			Validate: survey.Required,
		},
		{
			Name: "role",
			Prompt: &survey.Input{
				Message: "Role:",
				Default: "ACCOUNTADMIN",
			},
			Validate: survey.Required,
		},
		{
			Name: "warehouse",
			Prompt: &survey.Input{
				Message: "Warehouse:",
				Default: "COMPUTE_WH",
			},
			Validate: survey.Required,
		},
		{
			Name: "database",
			Prompt: &survey.Input{
				Message: "Database holding the ACCOUNTS table:",
			},
			Validate: survey.Required,
		},
		{
			Name: "schema",
			Prompt: &survey.Input{
				Message: "Schema:",
				Default: "PUBLIC",
			},
			Validate: survey.Required,
		},
	}

	err := survey.Ask(snowflakeQs, &cfg.Snowflake)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Report output settings
	fmt.Println()
	fmt.Println("📊 Report Configuration")
	fmt.Println("-------------------------")

	outputDir, err := ui.Input("Reports output directory:", "./reports", "Generated .pptx files are written here unless -o overrides it")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Reports.OutputDir = outputDir
	cfg.Logging.Level = "info"

	// Offer to keep the password out of the config file
	var useKeyring bool
	keyringPrompt := &survey.Confirm{
		Message: "Store the password in the system keyring instead of the config file?",
		Default: true,
	}
	survey.AskOne(keyringPrompt, &useKeyring)

	if useKeyring {
		cm, err := security.NewCredentialManager()
		if err != nil {
			ui.ShowWarning(fmt.Sprintf("Keyring unavailable (%v); keeping the password encrypted in the config file", err))
		} else if err := cm.StoreCredential(security.SnowflakePasswordCredential, "password", cfg.Snowflake.Password); err != nil {
			ui.ShowWarning(fmt.Sprintf("Could not store the password (%v); keeping it in the config file", err))
		} else {
			cfg.Snowflake.Password = ""
			ui.ShowSuccess("Password stored in the system keyring")
		}
	}

	// Optionally verify the connection before saving
	var testNow bool
	testPrompt := &survey.Confirm{
		Message: "Test the Snowflake connection now?",
		Default: true,
	}
	survey.AskOne(testPrompt, &testNow)

	if testNow {
		if err := testConnection(cfg); err != nil {
			ui.ShowError(err)

			keep, confirmErr := ui.Confirm("Save the configuration anyway?", false)
			if confirmErr != nil || !keep {
				fmt.Println("Setup cancelled.")
				return
			}
		} else {
			ui.ShowSuccess("Connection verified")
		}
	}

	// Save configuration
	if err := config.Save(cfg); err != nil {
		fmt.Printf("Error saving configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("✅ Configuration saved to:", config.GetConfigFile())
	fmt.Println()
	fmt.Println("List accounts with:   deckdrop accounts")
	fmt.Println("Generate a deck with: deckdrop generate <account-id>")
}

// testConnection runs a ping against the configured warehouse. The config
// password may already live in the keyring, so resolve through LoadSecure
// semantics rather than reading the struct blindly.
func testConnection(cfg *models.Config) error {
	svcConfig, err := serviceConfig(cfg)
	if err != nil {
		return err
	}

	if svcConfig.Password == "" {
		cm, err := security.NewCredentialManager()
		if err == nil {
			if cred, credErr := cm.GetCredential(security.SnowflakePasswordCredential); credErr == nil {
				svcConfig.Password = cred.Value
			}
		}
	}

	if err := account.ValidateConfig(svcConfig); err != nil {
		return err
	}

	service := account.NewService(svcConfig)
	defer service.Close()

	spinner := ui.NewSpinner("Testing connection...")
	spinner.Start()

	if err := service.TestConnection(); err != nil {
		spinner.Stop(false, "Connection failed")
		return err
	}

	spinner.Stop(true, "Connected to Snowflake")
	return nil
}
