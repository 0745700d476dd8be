package report

// The constants below define the visual contract of the generated deck.
// Lengths are inches on the 10 x 5.625 (16:9) canvas; colors are RRGGBB
// hex without a leading hash.

// Slide backgrounds.
const (
	titleBackground  = "1F497D"
	detailBackground = "F2F6FB"
)

// Title slide. All three blocks are centered and span the width between
// the side margins.
const (
	titleBlockX = 0.5
	titleBlockW = 9.0

	titleNameY     = 2.0
	titleNameH     = 1.2
	titleNameSize  = 40.0
	titleNameColor = "FFFFFF"

	titleSubtitleY     = 3.3
	titleSubtitleH     = 0.6
	titleSubtitleSize  = 20.0
	titleSubtitleColor = "DCE6F1"

	titleStampY     = 4.9
	titleStampH     = 0.4
	titleStampSize  = 12.0
	titleStampColor = "BFBFBF"
)

// Section header shared by the detail and metrics slides.
const (
	headerX     = 0.5
	headerY     = 0.3
	headerW     = 9.0
	headerH     = 0.6
	headerSize  = 28.0
	headerColor = "1F497D"
)

// Detail slide label/value rows, stacked at a fixed vertical step.
const (
	detailRowStartY = 1.2
	detailRowStep   = 0.5
	detailRowH      = 0.4

	detailLabelX     = 0.7
	detailLabelW     = 2.8
	detailLabelSize  = 14.0
	detailLabelColor = "44546A"

	detailValueX     = 3.6
	detailValueW     = 5.9
	detailValueSize  = 14.0
	detailValueColor = "262626"
)

// Metric cards. Three equal cards fill the row: 0.4 margin, 2.8 card,
// 0.4 gap, repeated, closing with the 0.4 margin.
const (
	cardStartX = 0.4
	cardY      = 1.6
	cardW      = 2.8
	cardH      = 2.2
	cardGap    = 0.4

	cardValueOffsetY = 0.45
	cardValueH       = 0.8
	cardValueSize    = 30.0

	cardLabelOffsetY = 1.35
	cardLabelH       = 0.4
	cardLabelSize    = 14.0
	cardLabelColor   = "595959"
)

// Card border palette, left to right. The card value text reuses the
// border color of its card.
const (
	cardBorderBlue   = "4472C4"
	cardBorderOrange = "ED7D31"
	cardBorderGreen  = "70AD47"
)
