// Package pptx serializes deck documents as PowerPoint packages. The
// output is a minimal OOXML presentation: one master, one blank layout,
// one theme and a slide part per deck slide.
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"deckdrop/internal/common"
	"deckdrop/pkg/deck"
	"deckdrop/pkg/errors"
)

// zipEpoch is the fixed modification time stamped on every archive
// entry; identical documents must produce identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Writer serializes one deck document.
type Writer struct {
	doc *deck.Document
}

// NewWriter creates a writer bound to doc.
func NewWriter(doc *deck.Document) *Writer {
	return &Writer{doc: doc}
}

type part struct {
	name string
	data string
}

// parts returns every package part in its fixed archive order.
func (w *Writer) parts() []part {
	slides := len(w.doc.Slides)

	parts := []part{
		{"[Content_Types].xml", contentTypes(slides)},
		{"_rels/.rels", packageRelsXML},
		{"docProps/app.xml", appProps(slides)},
		{"docProps/core.xml", corePropsXML},
		{"ppt/presentation.xml", presentation(slides, emu(w.doc.WidthIn), emu(w.doc.HeightIn))},
		{"ppt/_rels/presentation.xml.rels", presentationRels(slides)},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i, slide := range w.doc.Slides {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slideXML(slide)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML},
		)
	}

	return parts
}

// WriteTo writes the package to out and reports the bytes written.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	cw := &countingWriter{dst: out}
	zw := zip.NewWriter(cw)

	for _, p := range w.parts() {
		header := &zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		}
		f, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return cw.n, errors.Wrap(err, errors.ErrCodeFileOperation,
				fmt.Sprintf("Failed to start package entry %s", p.name))
		}
		if _, err := io.WriteString(f, p.data); err != nil {
			zw.Close()
			return cw.n, errors.Wrap(err, errors.ErrCodeFileOperation,
				fmt.Sprintf("Failed to write package entry %s", p.name))
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, errors.Wrap(err, errors.ErrCodeFileOperation, "Failed to finish package")
	}

	return cw.n, nil
}

// Bytes renders the package in memory.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the package to path. The path is validated before
// any file is created; a partial file left by a failed write is
// removed.
func (w *Writer) WriteFile(path string) error {
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("Invalid output path %s", path))
	}

	f, err := os.OpenFile(cleaned, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, common.FilePermissionNormal) // #nosec G304 - path is validated above
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeFileOperation, fmt.Sprintf("Failed to create %s", cleaned)).
			WithSuggestions("Check that the output directory exists and is writable")
	}

	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		os.Remove(cleaned)
		return err
	}

	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeFileOperation, fmt.Sprintf("Failed to close %s", cleaned))
	}

	return nil
}

type countingWriter struct {
	dst io.Writer
	n   int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.dst.Write(p)
	c.n += int64(n)
	return n, err
}
