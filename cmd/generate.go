package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"deckdrop/internal/account"
	"deckdrop/internal/common"
	"deckdrop/internal/config"
	"deckdrop/internal/observability"
	"deckdrop/internal/pptx"
	"deckdrop/internal/report"
	"deckdrop/internal/ui"
	"deckdrop/pkg/deck"
	"deckdrop/pkg/errors"
	"deckdrop/pkg/models"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate [account-id]",
	Short: "Generate an account overview deck",
	Long: `Generate a three-slide PowerPoint overview deck for one account.

The account row is fetched from Snowflake and rendered as a title slide,
a detail table and a key-metric card row. Without an account ID the
command lists the available accounts for interactive selection.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file path (default <account-id>.pptx in the reports directory)")
}

func runGenerate(cmd *cobra.Command, args []string) {
	if err := generateDeck(args); err != nil {
		errors.GetGlobalErrorHandler().Handle(err)
		ui.ShowError(err)
		os.Exit(1)
	}
}

func generateDeck(args []string) error {
	start := time.Now()
	u := ui.NewUI(verbose, quiet)

	service, appConfig, err := connectStore(u)
	if err != nil {
		return err
	}
	defer service.Close()

	span, ctx := observability.StartSpanFromContext(context.Background(), "generate")
	defer span.Finish()

	var accountID string
	if len(args) > 0 {
		accountID = args[0]
	} else {
		accounts, err := service.List(ctx)
		if err != nil {
			return err
		}
		accountID, err = ui.SelectAccount(accounts)
		if err != nil {
			return err
		}
	}
	span.SetTag("account_id", accountID)

	u.StartProgress(fmt.Sprintf("Fetching account %s...", accountID))
	var rec *account.Record
	err = observability.TraceFunction(ctx, "snowflake.fetch", func(ctx context.Context) error {
		var err error
		rec, err = service.Fetch(ctx, accountID)
		return err
	})
	if err != nil {
		u.FailProgress("Fetch failed")
		return err
	}
	u.StopProgress()

	rendererConfig := &report.RendererConfig{}
	if verbose {
		rendererConfig.Trace = observability.NewRenderTrace(observability.GetDefaultLogger())
	}

	var doc *deck.Document
	err = observability.TraceFunction(ctx, "report.render", func(ctx context.Context) error {
		var err error
		doc, err = report.NewRenderer(rendererConfig).Render(rec)
		if err == nil {
			observability.SpanFromContext(ctx).SetTag("slides", len(doc.Slides))
		}
		return err
	})
	if err != nil {
		return err
	}

	outputPath, err := resolveOutputPath(appConfig, rec.ID)
	if err != nil {
		return err
	}

	err = observability.TraceFunction(ctx, "pptx.write", func(ctx context.Context) error {
		return pptx.NewWriter(doc).WriteFile(outputPath)
	})
	if err != nil {
		return err
	}

	var size int64
	if info, err := os.Stat(outputPath); err == nil {
		size = info.Size()
	}

	if !quiet {
		ui.ShowGenerationSummary(rec.Name, outputPath, len(doc.Slides), doc.ShapeCount(), size, time.Since(start))
	}
	u.Success(fmt.Sprintf("Deck written to %s", outputPath))

	return nil
}

// connectStore loads the configuration and opens the Snowflake-backed
// account store. Callers own the returned service and must Close it.
func connectStore(u *ui.UI) (*account.Service, *models.Config, error) {
	appConfig, err := config.LoadSecure()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	svcConfig, err := serviceConfig(appConfig)
	if err != nil {
		return nil, nil, err
	}

	if err := account.ValidateConfig(svcConfig); err != nil {
		return nil, nil, err
	}

	service := account.NewService(svcConfig)

	u.StartProgress("Connecting to Snowflake...")
	if err := service.Connect(); err != nil {
		u.FailProgress("Connection failed")
		return nil, nil, err
	}
	u.StopProgress()

	return service, appConfig, nil
}

// serviceConfig maps the file configuration onto store settings
func serviceConfig(appConfig *models.Config) (account.Config, error) {
	svcConfig := account.Config{
		Account:   appConfig.Snowflake.Account,
		Username:  appConfig.Snowflake.Username,
		Password:  appConfig.Snowflake.Password,
		Database:  appConfig.Snowflake.Database,
		Schema:    appConfig.Snowflake.Schema,
		Warehouse: appConfig.Snowflake.Warehouse,
		Role:      appConfig.Snowflake.Role,
	}

	if appConfig.Snowflake.Timeout != "" {
		timeout, err := time.ParseDuration(appConfig.Snowflake.Timeout)
		if err != nil {
			return account.Config{}, errors.ConfigError(
				fmt.Sprintf("Invalid timeout %q", appConfig.Snowflake.Timeout),
				"snowflake.timeout",
			)
		}
		svcConfig.Timeout = timeout
	}

	return svcConfig, nil
}

// resolveOutputPath picks the output file: the -o flag wins, otherwise
// <account-id>.pptx lands in the configured reports directory.
func resolveOutputPath(appConfig *models.Config, accountID string) (string, error) {
	if generateOutput != "" {
		return generateOutput, nil
	}

	dir := appConfig.Reports.OutputDir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, common.DirPermissionNormal); err != nil {
		return "", fmt.Errorf("failed to create reports directory %s: %w", dir, err)
	}

	return filepath.Join(dir, accountID+".pptx"), nil
}
