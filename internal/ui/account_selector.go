package ui

import (
	"fmt"

	"deckdrop/internal/account"
)

// FormatAccountOption formats an account for selector display
func FormatAccountOption(rec account.Record) string {
	if rec.Type == "" {
		return fmt.Sprintf("%s - %s", rec.ID, rec.Name)
	}
	return fmt.Sprintf("%s - %s (%s)", rec.ID, rec.Name, rec.Type)
}

// SelectAccount displays an interactive account selector and returns the
// chosen account ID
func SelectAccount(accounts []account.Record) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available")
	}

	options := make([]string, len(accounts))
	idMap := make(map[string]string)

	for i, rec := range accounts {
		option := FormatAccountOption(rec)
		options[i] = option
		idMap[option] = rec.ID
	}

	selected, err := SearchableSelect("Select account:", options)
	if err != nil {
		return "", err
	}

	return idMap[selected], nil
}
