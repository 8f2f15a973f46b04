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
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"seehuhn.de/go/qrbill"
	"seehuhn.de/go/qrbill/bill"
	"seehuhn.de/go/qrbill/qrcode"
)

func newTestCanvas(t *testing.T) (*Canvas, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	c, err := New(buf)
	if err != nil {
		t.Fatal(err)
	}
	err = c.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	return c, buf
}

func TestCursor(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetCellHeightRatio(1.5)
	c.SetFont(qrbill.Helvetica, qrbill.Bold, 8)
	c.SetY(259)
	c.SetX(66)
	c.Cell(0, 0, "Währung", qrbill.AlignLeft, qrbill.LnBelow)

	want := 259 + 8*ptToMM*1.5
	if c.x != 66 || math.Abs(c.y-want) > 1e-9 {
		t.Errorf("cursor at (%g, %g), want (66, %g)", c.x, c.y, want)
	}

	c.SetY(197)
	if c.x != c.leftMargin {
		t.Errorf("SetY left x at %g", c.x)
	}
	c.SetX(117)
	c.Cell(20, 7, "Konto", qrbill.AlignLeft, qrbill.LnRight)
	if c.x != 137 || c.y != 197 {
		t.Errorf("cursor at (%g, %g), want (137, 197)", c.x, c.y)
	}

	c.Ln(3.5)
	if c.x != c.leftMargin || c.y != 200.5 {
		t.Errorf("cursor at (%g, %g) after Ln", c.x, c.y)
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestMultiCellHeight(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetCellHeightRatio(1)
	c.SetFont(qrbill.Helvetica, qrbill.Regular, 10)
	c.SetY(197)
	c.SetX(117)
	c.MultiCell(0, 0, "CH44 3199 9123 0008 8901 2\nBénédicte Jäger", qrbill.AlignLeft, qrbill.LnBelow)

	if c.x != 117 {
		t.Errorf("cursor at x=%g, want 117", c.x)
	}
	if want := 197 + 2*10*ptToMM; math.Abs(c.y-want) > 1e-9 {
		t.Errorf("cursor at y=%g, want %g", c.y, want)
	}
}

func TestMeasure(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetFont(qrbill.Helvetica, qrbill.Regular, 10)
	short := c.measure("Biel")
	long := c.measure("Biel/Bienne")
	if short <= 0 || long <= short {
		t.Errorf("widths %g, %g", short, long)
	}

	c.SetFont(qrbill.Helvetica, qrbill.Bold, 10)
	if bold := c.measure("Biel"); bold <= short {
		t.Errorf("bold width %g not larger than regular width %g", bold, short)
	}
}

func TestNoPage(t *testing.T) {
	c, err := New(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	c.Line(0, 0, 10, 10)
	if !errors.Is(c.Err(), ErrNoPage) {
		t.Errorf("got %v, want %v", c.Err(), ErrNoPage)
	}
}

func TestNoFont(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.Cell(10, 10, "Empfangsschein", qrbill.AlignLeft, qrbill.LnBelow)
	if c.Err() == nil {
		t.Error("text drawn without a font")
	}
}

func TestVectorImage(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.Image([]byte("<svg/>"), qrcode.SVG, 67, 209.5, 46, 46)
	first := c.Err()
	if first == nil {
		t.Fatal("SVG image accepted")
	}

	c.SetFont(qrbill.Helvetica, qrbill.Regular, 10)
	c.Cell(10, 10, "Zahlteil", qrbill.AlignLeft, qrbill.LnBelow)
	if c.Err() != first {
		t.Errorf("error changed from %v to %v", first, c.Err())
	}
}

func TestConvertColor(t *testing.T) {
	if convertColor(nil) == nil {
		t.Error("no default color")
	}
}

func TestRender(t *testing.T) {
	b := &bill.Bill{
		Account: "CH4431999123000889012",
		Creditor: bill.Address{
			Name:           "Robert Schneider AG",
			Street:         "Rue du Lac",
			BuildingNumber: "1268",
			PostalCode:     "2501",
			Town:           "Biel",
			Country:        "CH",
		},
		Amount:    decimal.NewNullDecimal(decimal.RequireFromString("1949.75")),
		Currency:  "CHF",
		Reference: bill.Reference{Type: bill.QRR, Number: "210000000003139471430009017"},
		Message:   "Auftrag vom 15.06.2020",
	}

	c, buf := newTestCanvas(t)
	err := qrbill.New(b, "de", c).SetPrintable(true).Render()
	if err != nil {
		t.Fatal(err)
	}
	err = qrbill.New(b, "it", c, qrbill.WithOffset(0, -110)).Render()
	if err != nil {
		t.Fatal(err)
	}
	err = c.Close()
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Errorf("not a PDF file: %.20q", out)
	}
	if !strings.Contains(out, "%%EOF") {
		t.Error("PDF file not finished")
	}
}

func TestFonts(t *testing.T) {
	c, _ := newTestCanvas(t)
	for _, style := range []qrbill.FontStyle{qrbill.Regular, qrbill.Bold} {
		F, err := c.getFont(style)
		if err != nil {
			t.Fatal(err)
		}
		again, _ := c.getFont(style)
		if again != F {
			t.Errorf("font for style %q loaded twice", style)
		}
		if w := newTextBox(&fontInfo{F: F, Size: 10}, "Zahlteil").Width(); w <= 0 {
			t.Errorf("text width %g", w)
		}
	}
}

func TestImage(t *testing.T) {
	data, err := qrcode.Encode("SPC\n0200\n1", qrcode.PNG)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := newTestCanvas(t)
	c.Image(data, qrcode.PNG, 67, 209.5, 46, 46)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
