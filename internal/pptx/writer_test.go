package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckdrop/pkg/deck"
)

func sampleDocument() *deck.Document {
	doc := deck.New()

	title := doc.AddSlide("1F497D")
	title.Add(deck.Shape{
		Kind: deck.TextBox, X: 0.5, Y: 2.0, W: 9.0, H: 1.2,
		Text: "Acme Corporation", FontSize: 40, Bold: true, Color: "FFFFFF", Align: deck.AlignCenter,
	})

	details := doc.AddSlide("F2F6FB")
	details.Add(deck.Shape{
		Kind: deck.TextBox, X: 0.7, Y: 1.2, W: 2.8, H: 0.4,
		Text: "Account ID", FontSize: 14, Bold: true, Color: "44546A", Align: deck.AlignLeft,
	})
	details.Add(deck.Shape{
		Kind: deck.TextBox, X: 3.6, Y: 1.2, W: 5.9, H: 0.4,
		Text: "ACC001", FontSize: 14, Color: "262626", Align: deck.AlignLeft,
	})

	metrics := doc.AddSlide("F2F6FB")
	metrics.Add(deck.Shape{
		Kind: deck.Card, X: 0.4, Y: 1.6, W: 2.8, H: 2.2, BorderColor: "4472C4",
	})
	metrics.Add(deck.Shape{
		Kind: deck.TextBox, X: 0.4, Y: 2.05, W: 2.8, H: 0.8,
		Text: "$4,000,000", FontSize: 30, Bold: true, Color: "4472C4", Align: deck.AlignCenter,
	})

	return doc
}

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(content)
	}
	return parts
}

func TestWriterPackageParts(t *testing.T) {
	data, err := NewWriter(sampleDocument()).Bytes()
	require.NoError(t, err)

	parts := readArchive(t, data)

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
	}
	for _, name := range required {
		assert.Contains(t, parts, name)
	}
}

func TestWriterSlideCount(t *testing.T) {
	data, err := NewWriter(sampleDocument()).Bytes()
	require.NoError(t, err)

	parts := readArchive(t, data)

	assert.Contains(t, parts["[Content_Types].xml"], "/ppt/slides/slide3.xml")
	assert.NotContains(t, parts["[Content_Types].xml"], "/ppt/slides/slide4.xml")
	assert.Contains(t, parts["docProps/app.xml"], "<Slides>3</Slides>")

	presentation := parts["ppt/presentation.xml"]
	assert.Contains(t, presentation, `<p:sldId id="256" r:id="rId2"/>`)
	assert.Contains(t, presentation, `<p:sldId id="258" r:id="rId4"/>`)
	assert.Contains(t, presentation, `<p:sldSz cx="9144000" cy="5143500"/>`)
}

func TestWriterSlideContent(t *testing.T) {
	data, err := NewWriter(sampleDocument()).Bytes()
	require.NoError(t, err)

	parts := readArchive(t, data)
	slide := parts["ppt/slides/slide1.xml"]

	assert.Contains(t, slide, "<a:t>Acme Corporation</a:t>")
	assert.Contains(t, slide, `<a:srgbClr val="1F497D"/>`, "solid background fill")
	assert.Contains(t, slide, `sz="4000"`)
	assert.Contains(t, slide, `b="1"`)
	assert.Contains(t, slide, `<a:pPr algn="ctr"/>`)
	assert.Contains(t, slide, `<a:off x="457200" y="1828800"/>`)
	assert.Contains(t, slide, `<a:ext cx="8229600" cy="1097280"/>`)
}

func TestWriterCardOutline(t *testing.T) {
	data, err := NewWriter(sampleDocument()).Bytes()
	require.NoError(t, err)

	parts := readArchive(t, data)
	slide := parts["ppt/slides/slide3.xml"]

	assert.Contains(t, slide, `<a:ln w="25400"><a:solidFill><a:srgbClr val="4472C4"/></a:solidFill></a:ln>`)
	assert.Contains(t, slide, `name="Card 1"`)
}

func TestWriterEscapesText(t *testing.T) {
	doc := deck.New()
	slide := doc.AddSlide("FFFFFF")
	slide.Add(deck.Shape{
		Kind: deck.TextBox, X: 1, Y: 1, W: 2, H: 1,
		Text: `R&D <Division> "West"`, FontSize: 14,
	})

	data, err := NewWriter(doc).Bytes()
	require.NoError(t, err)

	parts := readArchive(t, data)
	content := parts["ppt/slides/slide1.xml"]

	assert.Contains(t, content, "R&amp;D &lt;Division&gt;")
	assert.NotContains(t, content, "<Division>")
}

func TestWriterDeterministic(t *testing.T) {
	doc := sampleDocument()

	first, err := NewWriter(doc).Bytes()
	require.NoError(t, err)
	second, err := NewWriter(doc).Bytes()
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "package bytes must not vary between runs")
}

func TestWriterEmptyDocument(t *testing.T) {
	data, err := NewWriter(deck.New()).Bytes()
	require.NoError(t, err)

	parts := readArchive(t, data)

	assert.Contains(t, parts, "ppt/presentation.xml")
	assert.NotContains(t, parts, "ppt/slides/slide1.xml")
	assert.Contains(t, parts["docProps/app.xml"], "<Slides>0</Slides>")
}

func TestWriteTo(t *testing.T) {
	w := NewWriter(sampleDocument())

	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Greater(t, n, int64(0))
}

func TestWriteFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "report.pptx")

	err := NewWriter(sampleDocument()).WriteFile(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	parts := readArchive(t, data)
	assert.Contains(t, parts, "ppt/slides/slide1.xml")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileRejectsTraversal(t *testing.T) {
	err := NewWriter(sampleDocument()).WriteFile("../escape.pptx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid output path")
}
