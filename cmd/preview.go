package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deckdrop/internal/account"
	"deckdrop/internal/observability"
	"deckdrop/internal/report"
	"deckdrop/internal/ui"
	"deckdrop/pkg/deck"
	"deckdrop/pkg/errors"
)

var previewCmd = &cobra.Command{
	Use:   "preview <account-id>",
	Short: "Preview a deck without writing it",
	Long: `Fetch an account, render its deck in memory and print the slide and
shape inventory. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	Run:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	if err := previewDeck(args[0]); err != nil {
		errors.GetGlobalErrorHandler().Handle(err)
		ui.ShowError(err)
		os.Exit(1)
	}
}

func previewDeck(accountID string) error {
	u := ui.NewUI(verbose, quiet)

	service, _, err := connectStore(u)
	if err != nil {
		return err
	}
	defer service.Close()

	span, ctx := observability.StartSpanFromContext(context.Background(), "preview")
	defer span.Finish()
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
		return err
	})
	if err != nil {
		return err
	}

	ui.PrintSection(fmt.Sprintf("Deck Preview - %s", rec.Name))
	ui.ShowSlideInventory(os.Stdout, doc)

	fmt.Println()
	ui.PrintKeyValue("Slides", fmt.Sprintf("%d", len(doc.Slides)))
	ui.PrintKeyValue("Shapes", fmt.Sprintf("%d", doc.ShapeCount()))

	u.Info("Preview only - no file was written")

	return nil
}
