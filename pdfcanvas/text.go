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

package pdfcanvas

import (
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/graphics"
)

// fontInstance is a font which can be used for drawing and for measuring
// text.
type fontInstance interface {
	font.Layouter
	Layout(seq *font.GlyphSeq, ptSize float64, s string) *font.GlyphSeq
}

// fontInfo is a font at a given size.
type fontInfo struct {
	F    fontInstance
	Size float64
}

// textBox is a single line of typeset text.
type textBox struct {
	F      *fontInfo
	Glyphs *font.GlyphSeq
}

// newTextBox typesets text using the given font.
func newTextBox(F *fontInfo, text string) *textBox {
	return &textBox{
		F:      F,
		Glyphs: F.F.Layout(nil, F.Size, text),
	}
}

// Width returns the advance width of the text in PDF units.
func (obj *textBox) Width() float64 {
	width := 0.0
	for _, g := range obj.Glyphs.Seq {
		width += g.Advance
	}
	return width
}

// Draw shows the text with its baseline starting at (xPos, yPos).
func (obj *textBox) Draw(page *graphics.Writer, xPos, yPos float64) {
	if len(obj.Glyphs.Seq) == 0 {
		return
	}
	page.TextBegin()
	page.TextSetFont(obj.F.F, obj.F.Size)
	page.TextFirstLine(xPos, yPos)
	page.TextShowGlyphs(obj.Glyphs)
	page.TextEnd()
}
