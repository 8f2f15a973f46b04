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

// Package pdfcanvas implements a [qrbill.Canvas] which writes PDF files
// using the seehuhn.de/go/pdf library.
//
// Positions are given in millimetres from the top-left corner of an A4
// page, and converted to PDF user space on output.  Text metrics follow
// the conventions of the fpdf library, so that both canvases produce the
// same layout.
package pdfcanvas

import (
	"bytes"
	"errors"
	"fmt"
	gocolor "image/color"
	"io"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"seehuhn.de/go/qrbill"
	"seehuhn.de/go/qrbill/qrcode"
)

const (
	mmToPt = 72 / 25.4
	ptToMM = 25.4 / 72

	pageWidthMM  = 210
	pageHeightMM = 297

	// cellPadding is the horizontal distance between a cell border and
	// the text inside the cell.
	cellPadding = 1
)

// ErrNoPage is returned when drawing before the first call to AddPage.
var ErrNoPage = errors.New("pdfcanvas: no current page")

var _ qrbill.Canvas = (*Canvas)(nil)

// Canvas draws onto the pages of a PDF file.
type Canvas struct {
	doc  *document.MultiPage
	page *document.Page

	fontFiles map[qrbill.FontStyle]string
	fonts     map[qrbill.FontStyle]fontInstance
	font      *fontInfo

	leftMargin, rightMargin float64

	ratio     float64
	lineStyle qrbill.LineStyle
	x, y      float64

	err error
}

// Option configures a [Canvas].
type Option func(*Canvas)

// WithMargins sets the left and right page margins in millimetres.
func WithMargins(left, right float64) Option {
	return func(c *Canvas) {
		c.leftMargin = left
		c.rightMargin = right
	}
}

// WithFontFile uses a TrueType or OpenType font file for the given style,
// instead of the built-in Helvetica fonts.
func WithFontFile(style qrbill.FontStyle, fileName string) Option {
	return func(c *Canvas) {
		c.fontFiles[style] = fileName
	}
}

// New starts a new PDF file, written to w.
// Use AddPage to start the first page and Close to finish the file.
func New(w io.Writer, opts ...Option) (*Canvas, error) {
	doc, err := document.WriteMultiPage(w, document.A4, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	c := &Canvas{
		doc:         doc,
		fontFiles:   make(map[qrbill.FontStyle]string),
		fonts:       make(map[qrbill.FontStyle]fontInstance),
		leftMargin:  10,
		rightMargin: 10,
		ratio:       1.25,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AddPage finishes the current page, if any, and starts a new one.
func (c *Canvas) AddPage() error {
	if c.err != nil {
		return c.err
	}
	if c.page != nil {
		err := c.page.Close()
		if err != nil {
			c.err = err
			return err
		}
	}
	c.page = c.doc.AddPage()
	c.x = c.leftMargin
	c.y = 0
	return nil
}

// Close finishes the current page and the PDF file.
func (c *Canvas) Close() error {
	if c.page != nil {
		err := c.page.Close()
		if err != nil && c.err == nil {
			c.err = err
		}
		c.page = nil
	}
	err := c.doc.Close()
	if c.err != nil {
		return c.err
	}
	return err
}

// ready reports whether drawing is possible.
func (c *Canvas) ready() bool {
	if c.err != nil {
		return false
	}
	if c.page == nil {
		c.err = ErrNoPage
		return false
	}
	if c.page.Err != nil {
		c.err = c.page.Err
		return false
	}
	return true
}

// toPDF converts a position on the page into PDF user space.
func toPDF(x, y float64) (float64, float64) {
	return x * mmToPt, (pageHeightMM - y) * mmToPt
}

// SetAutoPageBreak implements the [qrbill.Canvas] interface.
// Pages are never broken automatically, so this does nothing.
func (c *Canvas) SetAutoPageBreak(auto bool) {}

// SetCellHeightRatio implements the [qrbill.Canvas] interface.
func (c *Canvas) SetCellHeightRatio(ratio float64) {
	c.ratio = ratio
}

// SetFont implements the [qrbill.Canvas] interface.
// Only the Helvetica family is available.  Other families are replaced by
// Helvetica, or by the font files given using [WithFontFile].
func (c *Canvas) SetFont(family string, style qrbill.FontStyle, size float64) {
	if c.err != nil {
		return
	}
	F, err := c.getFont(style)
	if err != nil {
		c.err = fmt.Errorf("pdfcanvas: font %s%s: %w", family, style, err)
		return
	}
	c.font = &fontInfo{F: F, Size: size}
}

// SetLineStyle implements the [qrbill.Canvas] interface.
func (c *Canvas) SetLineStyle(style qrbill.LineStyle) {
	c.lineStyle = style
}

// SetX implements the [qrbill.Canvas] interface.
func (c *Canvas) SetX(x float64) {
	c.x = x
}

// SetY implements the [qrbill.Canvas] interface.
func (c *Canvas) SetY(y float64) {
	c.x = c.leftMargin
	c.y = y
}

func (c *Canvas) cellSize(w, h float64) (float64, float64) {
	if w == 0 {
		w = pageWidthMM - c.rightMargin - c.x
	}
	if h == 0 && c.font != nil {
		h = c.font.Size * ptToMM * c.ratio
	}
	return w, h
}

// measure returns the width of s in millimetres, using the current font.
func (c *Canvas) measure(s string) float64 {
	return newTextBox(c.font, s).Width() * ptToMM
}

// Cell implements the [qrbill.Canvas] interface.
func (c *Canvas) Cell(w, h float64, text string, align qrbill.Align, ln qrbill.LineMode) {
	if !c.ready() {
		return
	}
	if c.font == nil {
		c.err = errors.New("pdfcanvas: no font set")
		return
	}
	w, h = c.cellSize(w, h)
	c.drawText(text, c.x, c.y, w, h, align)
	c.advance(w, h, ln)
}

// drawText draws one line of text inside the cell with top-left corner
// (x, y) and size w×h.  The text is centred vertically.
func (c *Canvas) drawText(text string, x, y, w, h float64, align qrbill.Align) {
	if text == "" {
		return
	}
	box := newTextBox(c.font, text)
	tx := x + cellPadding
	if align == qrbill.AlignRight {
		tx = x + w - cellPadding - box.Width()*ptToMM
	}
	baseline := y + 0.5*h + 0.3*c.font.Size*ptToMM
	xPDF, yPDF := toPDF(tx, baseline)
	box.Draw(c.page.Writer, xPDF, yPDF)
}

// MultiCell implements the [qrbill.Canvas] interface.
func (c *Canvas) MultiCell(w, h float64, text string, align qrbill.Align, ln qrbill.LineMode) {
	if !c.ready() {
		return
	}
	if c.font == nil {
		c.err = errors.New("pdfcanvas: no font set")
		return
	}
	w, h = c.cellSize(w, h)
	x0, y0 := c.x, c.y

	lines := breakLines(text, w-2*cellPadding, c.measure)
	for i, line := range lines {
		c.drawText(line, x0, y0+float64(i)*h, w, h, align)
	}

	c.x, c.y = x0, y0
	c.advance(w, float64(len(lines))*h, ln)
}

func (c *Canvas) advance(w, h float64, ln qrbill.LineMode) {
	switch ln {
	case qrbill.LnRight:
		c.x += w
	case qrbill.LnNextLine:
		c.x = c.leftMargin
		c.y += h
	case qrbill.LnBelow:
		c.y += h
	}
}

// Ln implements the [qrbill.Canvas] interface.
func (c *Canvas) Ln(h float64) {
	c.x = c.leftMargin
	c.y += h
}

// Line implements the [qrbill.Canvas] interface.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	if !c.ready() {
		return
	}
	page := c.page

	page.PushGraphicsState()
	page.SetLineWidth(c.lineStyle.Width * mmToPt)
	var dash []float64
	for _, d := range c.lineStyle.Dash {
		dash = append(dash, d*mmToPt)
	}
	page.SetLineDash(dash, 0)
	page.SetStrokeColor(convertColor(c.lineStyle.Color))

	page.MoveTo(toPDF(x1, y1))
	page.LineTo(toPDF(x2, y2))
	page.Stroke()
	page.PopGraphicsState()
}

// Image implements the [qrbill.Canvas] interface.
func (c *Canvas) Image(data []byte, format qrcode.Format, x, y, w, h float64) {
	if !c.ready() {
		return
	}
	if !format.IsRaster() {
		c.err = fmt.Errorf("pdfcanvas: cannot embed %s images", format)
		return
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		c.err = fmt.Errorf("pdfcanvas: QR code image: %w", err)
		return
	}

	// images are drawn into the unit square
	left, bottom := toPDF(x, y+h)
	page := c.page
	page.PushGraphicsState()
	page.Transform(matrix.Translate(left, bottom))
	page.Transform(matrix.Scale(w*mmToPt, h*mmToPt))
	page.DrawXObject(&pdfimage.PNG{Data: img})
	page.PopGraphicsState()
}

// Err implements the [qrbill.Canvas] interface.
func (c *Canvas) Err() error {
	if c.err == nil && c.page != nil && c.page.Err != nil {
		c.err = c.page.Err
	}
	return c.err
}

func convertColor(col gocolor.Color) color.Color {
	if col == nil {
		return color.DeviceGray(0)
	}
	if g, ok := col.(gocolor.Gray); ok {
		return color.DeviceGray(float64(g.Y) / 255)
	}
	r, g, b, _ := col.RGBA()
	return color.DeviceRGB(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}
