package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"deckdrop/internal/account"
	"deckdrop/pkg/deck"
)

func TestShowAccountsTable(t *testing.T) {
	accounts := []account.Record{
		{
			ID:          "ACC001",
			Name:        "Acme Corporation",
			Type:        "Customer",
			Industry:    "Manufacturing",
			Revenue:     decimal.RequireFromString("4000000.00"),
			Employees:   500,
			CreatedDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "ACC002",
			Name:        "Globex Inc",
			Type:        "Prospect",
			Industry:    "Technology",
			Revenue:     decimal.RequireFromString("750000.50"),
			Employees:   42,
			CreatedDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	ShowAccountsTable(&buf, accounts)
	output := buf.String()

	checks := []string{
		"ACC001",
		"Acme Corporation",
		"Customer",
		"Manufacturing",
		"$4,000,000.00",
		"500",
		"ACC002",
		"Globex Inc",
		"$750,000.50",
		"42",
	}

	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, output)
		}
	}
}

func TestShowAccountsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	ShowAccountsTable(&buf, nil)
	output := buf.String()

	// Header renders even with no rows
	if !strings.Contains(strings.ToUpper(output), "ID") {
		t.Errorf("Expected header row, got:\n%s", output)
	}
}

func TestShowSlideInventory(t *testing.T) {
	doc := deck.New()

	title := doc.AddSlide("1F497D")
	title.Add(deck.Shape{Kind: deck.TextBox, Text: "Acme Corporation"})
	title.Add(deck.Shape{Kind: deck.TextBox, Text: "Account Overview"})

	details := doc.AddSlide("F2F6FB")
	details.Add(deck.Shape{Kind: deck.TextBox, Text: "Account Details"})
	details.Add(deck.Shape{Kind: deck.Card})

	var buf bytes.Buffer
	ShowSlideInventory(&buf, doc)
	output := buf.String()

	checks := []string{
		"#1F497D",
		"#F2F6FB",
		"Acme Corporation",
		"Account Details",
	}

	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("Expected inventory to contain %q, got:\n%s", want, output)
		}
	}

	// Slide two holds one card and one text box
	lines := strings.Split(output, "\n")
	var detailLine string
	for _, line := range lines {
		if strings.Contains(line, "F2F6FB") {
			detailLine = line
		}
	}

	if detailLine == "" {
		t.Fatalf("Detail slide row not found in:\n%s", output)
	}

	if !strings.Contains(detailLine, "2") || !strings.Contains(detailLine, "1") {
		t.Errorf("Expected shape and text counts in row %q", detailLine)
	}
}

func TestShowSlideInventoryTruncatesTitle(t *testing.T) {
	doc := deck.New()
	slide := doc.AddSlide("FFFFFF")
	slide.Add(deck.Shape{
		Kind: deck.TextBox,
		Text: "An Extremely Long Account Name That Exceeds The Column Width",
	})

	var buf bytes.Buffer
	ShowSlideInventory(&buf, doc)
	output := buf.String()

	if !strings.Contains(output, "...") {
		t.Errorf("Expected truncated title, got:\n%s", output)
	}

	if strings.Contains(output, "Exceeds The Column Width") {
		t.Errorf("Expected long title to be cut, got:\n%s", output)
	}
}

func TestColorType(t *testing.T) {
	// Contains rather than equality: color codes wrap the text when
	// stdout is a terminal.
	for _, accountType := range []string{"Customer", "Prospect", "Partner", "Vendor", ""} {
		result := colorType(accountType)
		if !strings.Contains(result, accountType) {
			t.Errorf("colorType(%q) = %q, expected to contain input", accountType, result)
		}
	}

	if colorType("Vendor") != "Vendor" {
		t.Error("Unknown account type should pass through unchanged")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "zero",
			input:    "0",
			expected: "$0.00",
		},
		{
			name:     "thousands",
			input:    "4000000",
			expected: "$4,000,000.00",
		},
		{
			name:     "cents preserved",
			input:    "750000.50",
			expected: "$750,000.50",
		},
		{
			name:     "negative",
			input:    "-1234.56",
			expected: "-$1,234.56",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatAmount(decimal.RequireFromString(tt.input))
			if result != tt.expected {
				t.Errorf("formatAmount() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{
			name:     "small",
			input:    42,
			expected: "42",
		},
		{
			name:     "thousands",
			input:    1500,
			expected: "1,500",
		},
		{
			name:     "millions",
			input:    1234567,
			expected: "1,234,567",
		},
		{
			name:     "negative",
			input:    -42000,
			expected: "-42,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatCount(tt.input)
			if result != tt.expected {
				t.Errorf("formatCount() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "Acme",
			max:      10,
			expected: "Acme",
		},
		{
			name:     "exact length unchanged",
			input:    "1234567890",
			max:      10,
			expected: "1234567890",
		},
		{
			name:     "long string cut",
			input:    "12345678901",
			max:      10,
			expected: "1234567...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("truncate() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestFormatAccountOption(t *testing.T) {
	tests := []struct {
		name     string
		record   account.Record
		expected string
	}{
		{
			name: "with type",
			record: account.Record{
				ID:   "ACC001",
				Name: "Acme Corporation",
				Type: "Customer",
			},
			expected: "ACC001 - Acme Corporation (Customer)",
		},
		{
			name: "without type",
			record: account.Record{
				ID:   "ACC002",
				Name: "Globex Inc",
			},
			expected: "ACC002 - Globex Inc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatAccountOption(tt.record)
			if result != tt.expected {
				t.Errorf("FormatAccountOption() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSelectAccountEmpty(t *testing.T) {
	_, err := SelectAccount(nil)
	if err == nil {
		t.Fatal("Expected error for empty account list")
	}

	if !strings.Contains(err.Error(), "no accounts available") {
		t.Errorf("Unexpected error: %v", err)
	}
}
