package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"deckdrop/internal/ui"
	"deckdrop/pkg/errors"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts available for deck generation",
	Run:   runAccountsList,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts available for deck generation",
	Run:   runAccountsList,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.AddCommand(accountsListCmd)
}

func runAccountsList(cmd *cobra.Command, args []string) {
	if err := listAccounts(); err != nil {
		errors.GetGlobalErrorHandler().Handle(err)
		ui.ShowError(err)
		os.Exit(1)
	}
}

func listAccounts() error {
	u := ui.NewUI(verbose, quiet)

	service, _, err := connectStore(u)
	if err != nil {
		return err
	}
	defer service.Close()

	accounts, err := service.List(context.Background())
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		u.Info("No accounts found in the ACCOUNTS table")
		return nil
	}

	ui.PrintSection("Accounts")
	ui.ShowAccountsTable(os.Stdout, accounts)
	u.Printf("\n%d accounts\n", len(accounts))

	return nil
}
