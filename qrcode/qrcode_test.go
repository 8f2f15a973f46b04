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

package qrcode

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
)

const testPayload = "SPC\n0200\n1\nCH4431999123000889012\nS\nRobert Schneider AG\nRue du Lac\n1268\n2501\nBiel\nCH\n\n\n\n\n\n\n\n1949.75\nCHF\nS\nPia-Maria Rutschmann-Schnyder\nGrosse Marktgasse\n28\n9400\nRorschach\nCH\nQRR\n210000000003139471430009017\nOrder of 15 June 2020\nEPD"

func TestPNGRoundTrip(t *testing.T) {
	data, err := Encode(testPayload, PNG)
	if err != nil {
		t.Fatal(err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != codeEdgePx || b.Dy() != codeEdgePx {
		t.Fatalf("wrong image size %v", b)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	res, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.GetText() != testPayload {
		t.Errorf("wrong payload:\n%q\n%q", res.GetText(), testPayload)
	}
}

func TestSwissCross(t *testing.T) {
	img, err := Image(testPayload)
	if err != nil {
		t.Fatal(err)
	}
	mid := codeEdgePx / 2
	pos := mid - crossEdgePx/2

	gray := func(x, y int) uint8 {
		return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
	}
	isWhite := func(x, y int) bool { return gray(x, y) == 255 }
	isBlack := func(x, y int) bool { return gray(x, y) == 0 }

	if !isWhite(mid, mid) {
		t.Error("centre of the cross is not white")
	}
	if !isWhite(pos+1, pos+1) {
		t.Error("border of the cross is not white")
	}
	if !isBlack(pos+crossBorder+2, pos+crossBorder+2) {
		t.Error("background of the cross is not black")
	}

	if w := img.Bounds().Dx(); w != codeEdgePx {
		t.Errorf("image is %dpx wide, want %dpx", w, codeEdgePx)
	}
	// at 46mm on the page, the cross must be 7mm wide
	crossMM := float64(crossEdgePx) / float64(img.Bounds().Dx()) * 46
	if math.Abs(crossMM-7) > 0.05 {
		t.Errorf("cross is %.2fmm wide, want 7mm", crossMM)
	}
}

func TestSVG(t *testing.T) {
	data, err := Encode(testPayload, SVG)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, `width="46mm"`) {
		t.Errorf("unexpected SVG header: %.200s", s)
	}
	if strings.Count(s, "<rect") < 100 {
		t.Errorf("too few modules: %d", strings.Count(s, "<rect"))
	}
}

func TestEmptyPayload(t *testing.T) {
	for _, f := range []Format{PNG, SVG} {
		_, err := Encode("", f)
		if !errors.Is(err, ErrEmptyPayload) {
			t.Errorf("%s: got %v", f, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"png", PNG, true},
		{".PNG", PNG, true},
		{"svg", SVG, true},
		{"pdf", 0, false},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if (err == nil) != c.ok || got != c.want {
			t.Errorf("ParseFormat(%q) = %v, %v", c.in, got, err)
		}
	}
	if !PNG.IsRaster() || SVG.IsRaster() {
		t.Error("wrong raster classification")
	}
}
