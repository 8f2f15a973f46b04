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

// Package recorder implements a canvas which records all drawing calls,
// for use in tests.
package recorder

import (
	"fmt"
	"strings"

	"seehuhn.de/go/qrbill"
	"seehuhn.de/go/qrbill/qrcode"
)

// Op is one recorded drawing call.
type Op struct {
	Name string

	// X and Y give the cursor position when the call was made.
	X, Y float64

	// Args holds the numeric arguments of the call, in order.
	Args []float64

	// Text is the text argument of Cell and MultiCell, or the font family
	// and style for SetFont.
	Text string
}

func (op Op) String() string {
	return fmt.Sprintf("%s@(%g,%g)%v%q", op.Name, op.X, op.Y, op.Args, op.Text)
}

// Canvas records drawing calls and tracks the cursor the same way a PDF
// canvas would.  Text is never wrapped: each line of a MultiCell is one
// cell high.
type Canvas struct {
	Ops []Op

	// PageWidth and the margins are used to compute the width of cells with
	// width 0.
	PageWidth   float64
	LeftMargin  float64
	RightMargin float64

	x, y     float64
	fontSize float64
	ratio    float64

	failName string
	failNum  int
	failErr  error
	err      error
}

// New returns an empty recorder for an A4 page without margins.
func New() *Canvas {
	return &Canvas{
		PageWidth: 210,
		ratio:     1.25,
	}
}

// FailAt makes the n-th call (counting from 1) of the named method fail
// with err.
func (c *Canvas) FailAt(name string, n int, err error) {
	c.failName = name
	c.failNum = n
	c.failErr = err
}

// record appends a call and reports whether the call should be carried
// out.
func (c *Canvas) record(name, text string, args ...float64) bool {
	if c.err != nil {
		return false
	}
	if name == c.failName {
		c.failNum--
		if c.failNum == 0 {
			c.err = c.failErr
			return false
		}
	}
	c.Ops = append(c.Ops, Op{Name: name, X: c.x, Y: c.y, Args: args, Text: text})
	return true
}

// Filter returns the recorded calls of the named method.
func (c *Canvas) Filter(name string) []Op {
	var res []Op
	for _, op := range c.Ops {
		if op.Name == name {
			res = append(res, op)
		}
	}
	return res
}

// FindText returns the first Cell or MultiCell call with the given text.
func (c *Canvas) FindText(text string) (Op, bool) {
	for _, op := range c.Ops {
		if (op.Name == "Cell" || op.Name == "MultiCell") && op.Text == text {
			return op, true
		}
	}
	return Op{}, false
}

// SetAutoPageBreak implements the [qrbill.Canvas] interface.
func (c *Canvas) SetAutoPageBreak(auto bool) {
	v := 0.0
	if auto {
		v = 1
	}
	c.record("SetAutoPageBreak", "", v)
}

// SetCellHeightRatio implements the [qrbill.Canvas] interface.
func (c *Canvas) SetCellHeightRatio(ratio float64) {
	if c.record("SetCellHeightRatio", "", ratio) {
		c.ratio = ratio
	}
}

// SetFont implements the [qrbill.Canvas] interface.
func (c *Canvas) SetFont(family string, style qrbill.FontStyle, size float64) {
	if c.record("SetFont", family+style.String(), size) {
		c.fontSize = size
	}
}

// SetLineStyle implements the [qrbill.Canvas] interface.
func (c *Canvas) SetLineStyle(style qrbill.LineStyle) {
	c.record("SetLineStyle", "", append([]float64{style.Width}, style.Dash...)...)
}

// SetX implements the [qrbill.Canvas] interface.
func (c *Canvas) SetX(x float64) {
	if c.record("SetX", "", x) {
		c.x = x
	}
}

// SetY implements the [qrbill.Canvas] interface.
func (c *Canvas) SetY(y float64) {
	if c.record("SetY", "", y) {
		c.x = c.LeftMargin
		c.y = y
	}
}

func (c *Canvas) cellSize(w, h float64) (float64, float64) {
	if w == 0 {
		w = c.PageWidth - c.RightMargin - c.x
	}
	if h == 0 {
		h = c.fontSize * 25.4 / 72 * c.ratio
	}
	return w, h
}

// Cell implements the [qrbill.Canvas] interface.
func (c *Canvas) Cell(w, h float64, text string, align qrbill.Align, ln qrbill.LineMode) {
	if !c.record("Cell", text, w, h, float64(align), float64(ln)) {
		return
	}
	w, h = c.cellSize(w, h)
	c.advance(w, h, ln)
}

// MultiCell implements the [qrbill.Canvas] interface.
func (c *Canvas) MultiCell(w, h float64, text string, align qrbill.Align, ln qrbill.LineMode) {
	if !c.record("MultiCell", text, w, h, float64(align), float64(ln)) {
		return
	}
	w, h = c.cellSize(w, h)
	h *= float64(strings.Count(text, "\n") + 1)
	c.advance(w, h, ln)
}

func (c *Canvas) advance(w, h float64, ln qrbill.LineMode) {
	switch ln {
	case qrbill.LnRight:
		c.x += w
	case qrbill.LnNextLine:
		c.x = c.LeftMargin
		c.y += h
	case qrbill.LnBelow:
		c.y += h
	}
}

// Ln implements the [qrbill.Canvas] interface.
func (c *Canvas) Ln(h float64) {
	if c.record("Ln", "", h) {
		c.x = c.LeftMargin
		c.y += h
	}
}

// Line implements the [qrbill.Canvas] interface.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.record("Line", "", x1, y1, x2, y2)
}

// Image implements the [qrbill.Canvas] interface.
func (c *Canvas) Image(data []byte, format qrcode.Format, x, y, w, h float64) {
	c.record("Image", format.String(), x, y, w, h)
}

// Err implements the [qrbill.Canvas] interface.
func (c *Canvas) Err() error {
	return c.err
}
