// seehuhn.de/go/qrbill - Swiss QR-bill payment parts for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package fpdfcanvas implements a [qrbill.Canvas] using the fpdf library.
//
// Text is drawn with the PDF core fonts, which are limited to the
// Windows-1252 character set.  Characters outside this set are replaced.
package fpdfcanvas

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/go-pdf/fpdf"

	"seehuhn.de/go/qrbill"
	"seehuhn.de/go/qrbill/qrcode"
)

const ptToMM = 25.4 / 72

// ErrNegativePosition is reported when the cursor is moved to a negative
// position.  fpdf would measure such positions from the right or bottom
// edge of the page instead.
var ErrNegativePosition = errors.New("fpdfcanvas: negative position")

// Canvas draws onto A4 pages of an fpdf document.
type Canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string

	ratio    float64
	fontSize float64
	numImage int
}

// Option configures a [Canvas].
type Option func(*Canvas)

// WithMargins sets the page margins in millimetres.
func WithMargins(left, top, right float64) Option {
	return func(c *Canvas) {
		c.pdf.SetMargins(left, top, right)
	}
}

// New returns a canvas for a new, empty PDF document.
// Use AddPage to start the first page.
func New(opts ...Option) *Canvas {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreator("seehuhn.de/go/qrbill", true)
	c := &Canvas{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		ratio: 1.25,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddPage starts a new page.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

// PDF gives access to the underlying document, for drawing additional
// content.
func (c *Canvas) PDF() *fpdf.Fpdf {
	return c.pdf
}

// Output writes the PDF file to w and closes the document.
func (c *Canvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

// SetAutoPageBreak implements the [qrbill.Canvas] interface.
func (c *Canvas) SetAutoPageBreak(auto bool) {
	_, _, _, bottom := c.pdf.GetMargins()
	c.pdf.SetAutoPageBreak(auto, bottom)
}

// SetCellHeightRatio implements the [qrbill.Canvas] interface.
func (c *Canvas) SetCellHeightRatio(ratio float64) {
	c.ratio = ratio
}

// SetFont implements the [qrbill.Canvas] interface.
func (c *Canvas) SetFont(family string, style qrbill.FontStyle, size float64) {
	c.pdf.SetFont(family, style.String(), size)
	c.fontSize = size
}

// SetLineStyle implements the [qrbill.Canvas] interface.
func (c *Canvas) SetLineStyle(style qrbill.LineStyle) {
	c.pdf.SetLineWidth(style.Width)
	c.pdf.SetDashPattern(style.Dash, 0)
	col := style.Color
	if col == nil {
		col = color.Black
	}
	r, g, b, _ := col.RGBA()
	c.pdf.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
}

// SetX implements the [qrbill.Canvas] interface.
func (c *Canvas) SetX(x float64) {
	if x < 0 {
		c.pdf.SetError(fmt.Errorf("%w: x=%g", ErrNegativePosition, x))
		return
	}
	c.pdf.SetX(x)
}

// SetY implements the [qrbill.Canvas] interface.
func (c *Canvas) SetY(y float64) {
	if y < 0 {
		c.pdf.SetError(fmt.Errorf("%w: y=%g", ErrNegativePosition, y))
		return
	}
	c.pdf.SetY(y)
}

func (c *Canvas) lineHeight(h float64) float64 {
	if h == 0 {
		h = c.fontSize * ptToMM * c.ratio
	}
	return h
}

// Cell implements the [qrbill.Canvas] interface.
func (c *Canvas) Cell(w, h float64, text string, align qrbill.Align, ln qrbill.LineMode) {
	c.pdf.CellFormat(w, c.lineHeight(h), c.tr(text), "", int(ln), alignStr(align), false, 0, "")
}

// MultiCell implements the [qrbill.Canvas] interface.
func (c *Canvas) MultiCell(w, h float64, text string, align qrbill.Align, ln qrbill.LineMode) {
	x, y := c.pdf.GetXY()
	c.pdf.MultiCell(w, c.lineHeight(h), c.tr(text), "", alignStr(align), false)

	// fpdf always leaves the cursor at the start of the next line
	switch ln {
	case qrbill.LnRight:
		if w == 0 {
			_, _, right, _ := c.pdf.GetMargins()
			pageWidth, _ := c.pdf.GetPageSize()
			w = pageWidth - right - x
		}
		c.pdf.SetXY(x+w, y)
	case qrbill.LnBelow:
		c.pdf.SetX(x)
	}
}

// Ln implements the [qrbill.Canvas] interface.
func (c *Canvas) Ln(h float64) {
	c.pdf.Ln(h)
}

// Line implements the [qrbill.Canvas] interface.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

// Image implements the [qrbill.Canvas] interface.
func (c *Canvas) Image(data []byte, format qrcode.Format, x, y, w, h float64) {
	if c.pdf.Err() {
		return
	}
	if !format.IsRaster() {
		c.pdf.SetError(fmt.Errorf("fpdfcanvas: cannot embed %s images", format))
		return
	}

	c.numImage++
	name := fmt.Sprintf("qrbill-%d", c.numImage)
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))
	c.pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
}

// Err implements the [qrbill.Canvas] interface.
func (c *Canvas) Err() error {
	return c.pdf.Error()
}

func alignStr(align qrbill.Align) string {
	if align == qrbill.AlignRight {
		return "R"
	}
	return "L"
}
