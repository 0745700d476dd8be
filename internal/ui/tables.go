package ui

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"deckdrop/internal/account"
	"deckdrop/pkg/deck"
)

// ShowAccountsTable renders the account listing as a table
func ShowAccountsTable(w io.Writer, accounts []account.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Type", "Industry", "Revenue", "Employees"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, rec := range accounts {
		table.Append([]string{
			rec.ID,
			rec.Name,
			colorType(rec.Type),
			rec.Industry,
			formatAmount(rec.Revenue),
			formatCount(rec.Employees),
		})
	}

	table.Render()
}

// colorType colors known account types in the listing. The color package
// disables itself when stdout is not a terminal.
func colorType(accountType string) string {
	switch strings.ToLower(accountType) {
	case "customer":
		return color.GreenString(accountType)
	case "prospect":
		return color.YellowString(accountType)
	case "partner":
		return color.CyanString(accountType)
	default:
		return accountType
	}
}

// ShowSlideInventory renders the slide and shape breakdown of a deck
func ShowSlideInventory(w io.Writer, doc *deck.Document) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Slide", "Background", "Shapes", "Text Boxes", "Title"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, slide := range doc.Slides {
		texts := slide.Texts()
		title := ""
		if len(texts) > 0 {
			title = truncate(texts[0], 40)
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			"#" + slide.Background,
			strconv.Itoa(len(slide.Shapes)),
			strconv.Itoa(len(texts)),
			title,
		})
	}

	table.Render()
}

// formatAmount renders a revenue figure for table display, e.g. $4,000,000.00.
// The slide renderer has its own formatting; this one is terminal-facing.
func formatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	out := "$" + groupThousands(whole) + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}

// formatCount renders an integer with thousands separators
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if strings.HasPrefix(s, "-") {
		return "-" + groupThousands(s[1:])
	}
	return groupThousands(s)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
