// Package deck defines the in-memory presentation model produced by the
// report renderer and consumed by the pptx writer. A Document is built once,
// returned whole, and never mutated afterwards; callers own the value.
package deck

// Canvas dimensions for a 16:9 widescreen deck, in inches.
const (
	CanvasWidthIn  = 10.0
	CanvasHeightIn = 5.625
)

// ShapeKind identifies the visual element a Shape describes.
type ShapeKind int

const (
	// TextBox is a borderless, fill-less text frame.
	TextBox ShapeKind = iota
	// Card is an outlined rectangle with centered text content.
	Card
)

// String returns the lowercase name used in listings and logs.
func (k ShapeKind) String() string {
	switch k {
	case TextBox:
		return "text"
	case Card:
		return "card"
	default:
		return "unknown"
	}
}

// Align controls horizontal paragraph alignment inside a shape.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Shape is one positioned element on a slide. Coordinates and sizes are in
// inches from the slide's top-left corner; colors are RRGGBB hex without a
// leading '#'.
type Shape struct {
	Kind        ShapeKind
	X           float64
	Y           float64
	W           float64
	H           float64
	Text        string
	FontSize    float64 // points
	Bold        bool
	Color       string // text color
	Align       Align
	BorderColor string // outline color, Card shapes only
}

// Slide is one page of the deck: a solid background color plus ordered
// shapes, drawn back to front.
type Slide struct {
	Background string
	Shapes     []Shape
}

// Add appends a shape to the slide.
func (s *Slide) Add(shape Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// Texts returns the text content of every shape on the slide, in draw order.
func (s *Slide) Texts() []string {
	out := make([]string, 0, len(s.Shapes))
	for _, sh := range s.Shapes {
		out = append(out, sh.Text)
	}
	return out
}

// HasText reports whether any shape on the slide carries exactly this text.
func (s *Slide) HasText(text string) bool {
	for _, sh := range s.Shapes {
		if sh.Text == text {
			return true
		}
	}
	return false
}

// Document is a complete presentation.
type Document struct {
	WidthIn  float64
	HeightIn float64
	Slides   []Slide
}

// New returns an empty Document on the standard 16:9 canvas.
func New() *Document {
	return &Document{
		WidthIn:  CanvasWidthIn,
		HeightIn: CanvasHeightIn,
	}
}

// AddSlide appends a slide with the given background color and returns a
// pointer to it so the caller can populate shapes in place. The pointer is
// valid until the next AddSlide call.
func (d *Document) AddSlide(background string) *Slide {
	d.Slides = append(d.Slides, Slide{Background: background})
	return &d.Slides[len(d.Slides)-1]
}

// ShapeCount returns the total number of shapes across all slides.
func (d *Document) ShapeCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Shapes)
	}
	return n
}
