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

package qrbill

import (
	"image/color"

	"seehuhn.de/go/qrbill/qrcode"
)

// Canvas is a drawing surface with a text cursor.
//
// All lengths are in millimetres, measured from the top-left corner of the
// page.  The cursor is moved by SetX, SetY, Cell, MultiCell and Ln.
// Callers must not rely on the cursor position after any other call.
//
// Errors are sticky: once a drawing call has failed, Err returns the error
// and all further calls do nothing.
type Canvas interface {
	// SetAutoPageBreak enables or disables automatic page breaks when text
	// reaches the bottom margin.
	SetAutoPageBreak(auto bool)

	// SetCellHeightRatio sets the ratio between cell height and font size,
	// used by cells with height 0.
	SetCellHeightRatio(ratio float64)

	// SetFont selects the font for subsequent text.  The size is in points.
	SetFont(family string, style FontStyle, size float64)

	// SetLineStyle sets the style for subsequent lines.
	SetLineStyle(style LineStyle)

	// SetX moves the cursor to the given horizontal position.
	SetX(x float64)

	// SetY moves the cursor to the given vertical position and resets the
	// horizontal position to the left margin.
	SetY(y float64)

	// Cell draws a single line of text in a cell of width w and height h,
	// starting at the cursor.  A width of 0 extends the cell to the right
	// margin, a height of 0 uses the current font size and cell height
	// ratio.
	Cell(w, h float64, text string, align Align, ln LineMode)

	// MultiCell draws text, wrapped to width w, as a sequence of cells.
	MultiCell(w, h float64, text string, align Align, ln LineMode)

	// Ln moves the cursor down by h and back to the left margin.
	Ln(h float64)

	// Line draws a straight line from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64)

	// Image draws an image file with its top-left corner at (x, y),
	// scaled to w×h.
	Image(data []byte, format qrcode.Format, x, y, w, h float64)

	// Err returns the first error which occurred on the canvas.
	Err() error
}

// FontStyle selects a font variant.
type FontStyle int

// These are the font styles used on a payment part.
const (
	Regular FontStyle = iota
	Bold
)

func (s FontStyle) String() string {
	if s == Bold {
		return "B"
	}
	return ""
}

// Align is the horizontal alignment of text within a cell.
type Align int

// These are the text alignments used on a payment part.
const (
	AlignLeft Align = iota
	AlignRight
)

// LineMode determines where the cursor goes after a cell has been drawn.
type LineMode int

const (
	// LnRight leaves the cursor to the right of the cell.
	LnRight LineMode = iota

	// LnNextLine moves the cursor to the start of the next line.
	LnNextLine

	// LnBelow moves the cursor below the cell, at the cell's left edge.
	LnBelow
)

// LineStyle describes how lines are stroked.
type LineStyle struct {
	// Width is the line width in millimetres.
	Width float64

	// Dash gives the lengths of alternating dashes and gaps.
	// Solid lines are drawn if Dash is empty.
	Dash []float64

	Color color.Color
}

// Helvetica is the font family used for all text.
const Helvetica = "helvetica"
