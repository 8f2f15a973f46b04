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

package fpdfcanvas

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

func TestCellHeight(t *testing.T) {
	c := New()
	c.AddPage()
	c.SetCellHeightRatio(1.5)
	c.SetFont(qrbill.Helvetica, qrbill.Bold, 8)
	c.SetY(259)
	c.SetX(66)
	c.Cell(0, 0, "Währung", qrbill.AlignLeft, qrbill.LnBelow)

	x, y := c.PDF().GetXY()
	want := 259 + 8*ptToMM*1.5
	if x != 66 || math.Abs(y-want) > 1e-9 {
		t.Errorf("cursor at (%g, %g), want (66, %g)", x, y, want)
	}
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestMultiCellBelow(t *testing.T) {
	c := New()
	c.AddPage()
	c.SetCellHeightRatio(1)
	c.SetFont(qrbill.Helvetica, qrbill.Regular, 10)
	c.SetY(197)
	c.SetX(117)
	c.MultiCell(0, 0, "CH44 3199 9123 0008 8901 2\nBénédicte Jäger", qrbill.AlignLeft, qrbill.LnBelow)

	x, y := c.PDF().GetXY()
	if x != 117 {
		t.Errorf("cursor at x=%g, want 117", x)
	}
	if want := 197 + 2*10*ptToMM; math.Abs(y-want) > 1e-9 {
		t.Errorf("cursor at y=%g, want %g", y, want)
	}
}

func TestVectorImage(t *testing.T) {
	c := New()
	c.AddPage()
	c.Image([]byte("<svg/>"), qrcode.SVG, 67, 209.5, 46, 46)
	if c.Err() == nil {
		t.Fatal("SVG image accepted")
	}
}

func TestRender(t *testing.T) {
	b := &bill.Bill{
		Account: "CH4431999123000889012",
		Creditor: bill.Address{
			Name:         "Bénédicte Jäger",
			AddressLine1: "Rue du Grès 1268",
			AddressLine2: "2501 Biel",
			Country:      "CH",
		},
		Amount:    decimal.NewNullDecimal(decimal.RequireFromString("2500.25")),
		Currency:  "CHF",
		Reference: bill.Reference{Type: bill.QRR, Number: "210000000003139471430009017"},
	}

	c := New()
	c.AddPage()
	err := qrbill.New(b, "fr", c).SetPrintable(true).Render()
	if err != nil {
		t.Fatal(err)
	}
	err = qrbill.New(b, "en", c, qrbill.WithOffset(0, -110)).SetPrintable(true).Render()
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := c.Output(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Errorf("not a PDF file: %.20q", out)
	}
	if !strings.Contains(out, "/Helvetica-Bold") {
		t.Error("bold font missing")
	}
	if !strings.Contains(out, "/Subtype /Image") {
		t.Error("QR code missing")
	}
}

func TestStickyError(t *testing.T) {
	c := New()
	c.AddPage()
	c.Image(nil, qrcode.SVG, 0, 0, 1, 1)
	first := c.Err()
	c.SetFont("no such font", qrbill.Regular, 10)
	if !errors.Is(c.Err(), first) {
		t.Errorf("error changed from %v to %v", first, c.Err())
	}
}

func TestNegativePosition(t *testing.T) {
	c := New()
	c.AddPage()
	c.SetY(-2)
	if !errors.Is(c.Err(), ErrNegativePosition) {
		t.Errorf("SetY(-2): got %v, want %v", c.Err(), ErrNegativePosition)
	}

	c = New()
	c.AddPage()
	c.SetX(-6)
	if !errors.Is(c.Err(), ErrNegativePosition) {
		t.Errorf("SetX(-6): got %v, want %v", c.Err(), ErrNegativePosition)
	}
	if x, _ := c.PDF().GetXY(); x > 100 {
		t.Errorf("cursor moved to x=%g", x)
	}
}

func TestRenderShiftedOffPage(t *testing.T) {
	b := &bill.Bill{
		Account: "CH4431999123000889012",
		Creditor: bill.Address{
			Name:         "Bénédicte Jäger",
			AddressLine1: "Rue du Grès 1268",
			AddressLine2: "2501 Biel",
			Country:      "CH",
		},
		Currency:  "CHF",
		Reference: bill.Reference{Type: bill.QRR, Number: "210000000003139471430009017"},
	}

	c := New()
	c.AddPage()
	err := qrbill.New(b, "de", c, qrbill.WithOffset(-10, 0)).Render()
	if !errors.Is(err, ErrNegativePosition) {
		t.Errorf("got %v, want %v", err, ErrNegativePosition)
	}
}
