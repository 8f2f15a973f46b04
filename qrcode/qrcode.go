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
	"fmt"
	"image"
	"image/color"

	"github.com/ajstarks/svgo"
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/disintegration/imaging"
	goqrcode "github.com/skip2/go-qrcode"
)

// The Swiss cross is 7mm wide.  The image has no quiet zone and is placed
// at 46mm on the payment part.  Pixel sizes are chosen so that the cross
// image is 166px.
const (
	crossEdgeMM = 7
	codeEdgeMM  = 46

	crossEdgePx = 166
	codeEdgePx  = crossEdgePx * codeEdgeMM / crossEdgeMM

	// proportions of the cross, in units of crossEdgePx
	crossBorder   = 12
	crossBarLong  = 94
	crossBarShort = 28
)

// ErrEmptyPayload is returned when asked to encode an empty payload.
var ErrEmptyPayload = errors.New("qrcode: empty payload")

// Encode returns the QR code for payload, as a file in the given format.
func Encode(payload string, format Format) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	switch format {
	case PNG:
		return encodePNG(payload)
	case SVG:
		return encodeSVG(payload)
	default:
		return nil, fmt.Errorf("qrcode: unsupported format %s", format)
	}
}

// Image returns the QR code for payload with the Swiss cross overlaid.
func Image(payload string) (image.Image, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	code, err := qr.Encode(payload, qr.M, qr.Unicode)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, codeEdgePx, codeEdgePx)
	if err != nil {
		return nil, err
	}

	const pos = codeEdgePx/2 - crossEdgePx/2
	img := imaging.Paste(imaging.New(codeEdgePx, codeEdgePx, color.White), scaled, image.Pt(0, 0))
	return imaging.Paste(img, swissCross(), image.Pt(pos, pos)), nil
}

func encodePNG(payload string) ([]byte, error) {
	img, err := Image(payload)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	err = imaging.Encode(buf, img, imaging.PNG)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// swissCross draws the cross: a black square with a white border and a
// white plus sign in the middle.
func swissCross() image.Image {
	cross := imaging.New(crossEdgePx, crossEdgePx, color.White)
	inner := imaging.New(crossEdgePx-2*crossBorder, crossEdgePx-2*crossBorder, color.Black)
	cross = imaging.Paste(cross, inner, image.Pt(crossBorder, crossBorder))

	long := (crossEdgePx - crossBarLong) / 2
	short := (crossEdgePx - crossBarShort) / 2
	cross = imaging.Paste(cross, imaging.New(crossBarLong, crossBarShort, color.White), image.Pt(long, short))
	cross = imaging.Paste(cross, imaging.New(crossBarShort, crossBarLong, color.White), image.Pt(short, long))
	return cross
}

// encodeSVG writes the code as one rectangle per dark module.  The image
// has no quiet zone and is sized to the 46mm used on the payment part.
func encodeSVG(payload string) ([]byte, error) {
	q, err := goqrcode.New(payload, goqrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()
	n := len(bitmap)

	// One module is unit×unit in user space.  With unit = 46, the cross
	// edge of 7mm becomes 7*n.
	const sizeMM = 46
	const unit = sizeMM
	size := n * unit

	buf := &bytes.Buffer{}
	s := svg.New(buf)
	s.Startunit(sizeMM, sizeMM, "mm", fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))
	s.Rect(0, 0, size, size, "fill:white;stroke:none")
	s.Group(`shape-rendering="crispEdges"`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				s.Rect(x*unit, y*unit, unit, unit, "fill:black;stroke:none")
			}
		}
	}
	s.Gend()

	c := crossEdgeMM * n
	border := c * crossBorder / crossEdgePx
	long := c * crossBarLong / crossEdgePx
	short := c * crossBarShort / crossEdgePx
	x0 := (size - c) / 2
	s.Rect(x0, x0, c, c, "fill:white;stroke:none")
	s.Rect(x0+border, x0+border, c-2*border, c-2*border, "fill:black;stroke:none")
	s.Rect(x0+(c-long)/2, x0+(c-short)/2, long, short, "fill:white;stroke:none")
	s.Rect(x0+(c-short)/2, x0+(c-long)/2, short, long, "fill:white;stroke:none")
	s.End()

	return buf.Bytes(), nil
}
