// Package report renders one account record into the fixed three-slide
// deck: title slide, detail table, metric card row.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"deckdrop/internal/account"
	"deckdrop/pkg/deck"
	"deckdrop/pkg/errors"
)

// Trace receives one callback per rendering step. Implementations must
// be cheap; the renderer invokes them inline.
type Trace interface {
	Step(name string, fields map[string]interface{})
}

// Renderer builds account decks. The zero collaborators are the wall
// clock and no tracing; both can be injected through RendererConfig.
type Renderer struct {
	clock func() time.Time
	trace Trace
}

// RendererConfig holds the injectable collaborators of a Renderer.
type RendererConfig struct {
	Clock func() time.Time
	Trace Trace
}

// NewRenderer creates a renderer. A nil config uses time.Now and no
// trace observer.
func NewRenderer(config *RendererConfig) *Renderer {
	if config == nil {
		config = &RendererConfig{}
	}
	r := &Renderer{
		clock: config.Clock,
		trace: config.Trace,
	}
	if r.clock == nil {
		r.clock = time.Now
	}
	return r
}

// Render lays out the three-slide deck for one account record. The
// result is deterministic for a fixed record and clock; the record is
// not modified and no other state is touched beyond the optional trace
// callbacks.
func (r *Renderer) Render(rec *account.Record) (*deck.Document, error) {
	if rec.Employees <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidRecord,
			fmt.Sprintf("Account %s has no employees; revenue per employee is undefined", rec.ID)).
			WithContext("account_id", rec.ID).
			WithContext("employees", rec.Employees).
			WithSuggestions("Correct the EMPLOYEES column for this account before generating a report")
	}

	r.step("render_started", map[string]interface{}{"account_id": rec.ID})

	doc := deck.New()

	r.addTitleSlide(doc, rec)
	r.step("title_slide_added", nil)

	r.addDetailSlide(doc, rec)
	r.step("detail_slide_added", nil)

	r.addMetricsSlide(doc, rec)
	r.step("metrics_slide_added", nil)

	r.step("render_completed", map[string]interface{}{
		"slides": len(doc.Slides),
		"shapes": doc.ShapeCount(),
	})

	return doc, nil
}

func (r *Renderer) addTitleSlide(doc *deck.Document, rec *account.Record) {
	slide := doc.AddSlide(titleBackground)

	slide.Add(deck.Shape{
		Kind:     deck.TextBox,
		X:        titleBlockX,
		Y:        titleNameY,
		W:        titleBlockW,
		H:        titleNameH,
		Text:     rec.Name,
		FontSize: titleNameSize,
		Bold:     true,
		Color:    titleNameColor,
		Align:    deck.AlignCenter,
	})

	slide.Add(deck.Shape{
		Kind:     deck.TextBox,
		X:        titleBlockX,
		Y:        titleSubtitleY,
		W:        titleBlockW,
		H:        titleSubtitleH,
		Text:     "Account Overview",
		FontSize: titleSubtitleSize,
		Color:    titleSubtitleColor,
		Align:    deck.AlignCenter,
	})

	slide.Add(deck.Shape{
		Kind:     deck.TextBox,
		X:        titleBlockX,
		Y:        titleStampY,
		W:        titleBlockW,
		H:        titleStampH,
		Text:     "Generated on " + r.clock().Format("January 2, 2006"),
		FontSize: titleStampSize,
		Color:    titleStampColor,
		Align:    deck.AlignCenter,
	})
}

func (r *Renderer) addDetailSlide(doc *deck.Document, rec *account.Record) {
	slide := doc.AddSlide(detailBackground)

	slide.Add(sectionHeader("Account Details"))

	rows := []struct {
		label string
		value string
	}{
		{"Account ID", rec.ID},
		{"Account Name", rec.Name},
		{"Account Type", rec.Type},
		{"Industry", rec.Industry},
		{"Annual Revenue", formatCurrency(rec.Revenue)},
		{"Number of Employees", strconv.Itoa(rec.Employees)},
		{"Customer Since", rec.CreatedDate.Format("2006-01-02")},
	}

	for i, row := range rows {
		y := detailRowStartY + float64(i)*detailRowStep

		slide.Add(deck.Shape{
			Kind:     deck.TextBox,
			X:        detailLabelX,
			Y:        y,
			W:        detailLabelW,
			H:        detailRowH,
			Text:     row.label,
			FontSize: detailLabelSize,
			Bold:     true,
			Color:    detailLabelColor,
			Align:    deck.AlignLeft,
		})

		slide.Add(deck.Shape{
			Kind:     deck.TextBox,
			X:        detailValueX,
			Y:        y,
			W:        detailValueW,
			H:        detailRowH,
			Text:     row.value,
			FontSize: detailValueSize,
			Color:    detailValueColor,
			Align:    deck.AlignLeft,
		})
	}
}

func (r *Renderer) addMetricsSlide(doc *deck.Document, rec *account.Record) {
	slide := doc.AddSlide(detailBackground)

	slide.Add(sectionHeader("Key Performance Metrics"))

	perEmployee := rec.Revenue.Div(decimal.NewFromInt(int64(rec.Employees)))

	cards := []struct {
		value  string
		label  string
		border string
	}{
		{formatCurrencyWhole(rec.Revenue), "Total Revenue", cardBorderBlue},
		{formatInt(rec.Employees), "Employees", cardBorderOrange},
		{formatCurrencyWhole(perEmployee), "Revenue per Employee", cardBorderGreen},
	}

	for i, card := range cards {
		x := cardStartX + float64(i)*(cardW+cardGap)

		slide.Add(deck.Shape{
			Kind:        deck.Card,
			X:           x,
			Y:           cardY,
			W:           cardW,
			H:           cardH,
			BorderColor: card.border,
		})

		slide.Add(deck.Shape{
			Kind:     deck.TextBox,
			X:        x,
			Y:        cardY + cardValueOffsetY,
			W:        cardW,
			H:        cardValueH,
			Text:     card.value,
			FontSize: cardValueSize,
			Bold:     true,
			Color:    card.border,
			Align:    deck.AlignCenter,
		})

		slide.Add(deck.Shape{
			Kind:     deck.TextBox,
			X:        x,
			Y:        cardY + cardLabelOffsetY,
			W:        cardW,
			H:        cardLabelH,
			Text:     card.label,
			FontSize: cardLabelSize,
			Color:    cardLabelColor,
			Align:    deck.AlignCenter,
		})
	}
}

func sectionHeader(text string) deck.Shape {
	return deck.Shape{
		Kind:     deck.TextBox,
		X:        headerX,
		Y:        headerY,
		W:        headerW,
		H:        headerH,
		Text:     text,
		FontSize: headerSize,
		Bold:     true,
		Color:    headerColor,
		Align:    deck.AlignLeft,
	}
}

func (r *Renderer) step(name string, fields map[string]interface{}) {
	if r.trace != nil {
		r.trace.Step(name, fields)
	}
}
