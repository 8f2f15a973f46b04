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
	"fmt"
	"image/color"
)

// Region is one of the two parts of a payment part.
type Region int

// These are the regions of a payment part.
const (
	noRegion Region = iota
	Receipt
	PaymentPart
)

func (r Region) String() string {
	switch r {
	case Receipt:
		return "receipt"
	case PaymentPart:
		return "payment part"
	default:
		return ""
	}
}

// Positions on the page, in millimetres.
const (
	receiptX     = 4
	paymentX     = 66
	paymentInfoX = 117

	titleY          = 195
	currencyAmountY = 259
	furtherInfoY    = 286

	receiptAmountX = 16
	paymentAmountX = 80

	qrCodeX    = paymentX + 1
	qrCodeY    = 209.5
	qrCodeSize = 46
)

// Ratios between cell height and font size.
const (
	receiptCellRatio        = 1.2
	paymentCellRatio        = 1.1
	currencyAmountCellRatio = 1.5
)

// box is a rectangle given by its top-left corner and size.
type box struct {
	x, y, w, h float64
}

// sizing holds the dimensions which differ between the receipt and the
// payment part.
type sizing struct {
	titleSize float64
	textSize  float64
	lineFeed  float64

	currencyX, amountX float64

	placeholder box
}

var (
	receiptSizing = sizing{
		titleSize:   6,
		textSize:    8,
		lineFeed:    3.5,
		currencyX:   receiptX,
		amountX:     receiptAmountX,
		placeholder: box{27, currencyAmountY + 2, 30, 10},
	}
	paymentSizing = sizing{
		titleSize:   8,
		textSize:    10,
		lineFeed:    4.8,
		currencyX:   paymentX,
		amountX:     paymentAmountX,
		placeholder: box{77, 265, 40, 15},
	}
)

func sizingFor(r Region) *sizing {
	if r == Receipt {
		return &receiptSizing
	}
	return &paymentSizing
}

const cornerLength = 3

var black = color.Gray{Y: 0}

// The methods below apply the offset to all absolute positions.  Relative
// movements, like the ones done by Ln and Cell, are not shifted.

func (o *Output) setX(x float64) {
	x, _ = o.offset.Apply(x, 0)
	o.canvas.SetX(x)
}

func (o *Output) setY(y float64) {
	_, y = o.offset.Apply(0, y)
	o.canvas.SetY(y)
}

func (o *Output) line(x1, y1, x2, y2 float64) {
	x1, y1 = o.offset.Apply(x1, y1)
	x2, y2 = o.offset.Apply(x2, y2)
	o.canvas.Line(x1, y1, x2, y2)
}

func (o *Output) translate(key string) string {
	return o.tr.Translate(key, o.lang)
}

func (o *Output) drawSeparation() error {
	if !o.printable {
		return nil
	}
	o.canvas.SetLineStyle(LineStyle{Width: 0.1, Dash: []float64{4}, Color: black})
	o.line(2, 193, 208, 193)
	o.line(62, 193, 62, 296)
	o.canvas.SetFont(Helvetica, Regular, 7)
	o.setY(188)
	o.setX(paymentX)
	o.canvas.Cell(0, 0, o.translate("separate"), AlignLeft, LnRight)
	return nil
}

func (o *Output) drawReceiptInformation(c *Content) error {
	o.canvas.SetCellHeightRatio(receiptCellRatio)
	o.canvas.SetFont(Helvetica, Bold, 11)
	o.setY(titleY)
	o.setX(receiptX)
	o.canvas.Cell(0, 7, o.translate("receipt"), AlignLeft, LnRight)

	o.setY(204)
	for _, e := range c.Information {
		o.setX(receiptX)
		o.drawElement(e, &receiptSizing)
	}

	o.canvas.SetFont(Helvetica, Bold, 6)
	o.setY(273)
	o.setX(receiptX)
	o.canvas.Cell(54, 0, o.translate("acceptancePoint"), AlignRight, LnBelow)
	return nil
}

func (o *Output) drawQRCode() error {
	if !o.format.IsRaster() {
		return fmt.Errorf("%w: %s", ErrUnsupportedImageFormat, o.format)
	}
	data, err := o.doc.QRCode(o.format)
	if err != nil {
		return err
	}
	x, y := o.offset.Apply(qrCodeX, qrCodeY)
	o.canvas.Image(data, o.format, x, y, qrCodeSize, qrCodeSize)
	return nil
}

func (o *Output) drawPaymentInformation(c *Content) error {
	o.canvas.SetCellHeightRatio(paymentCellRatio)
	o.canvas.SetFont(Helvetica, Bold, 11)
	o.setY(titleY)
	o.setX(paymentX)
	o.canvas.Cell(48, 7, o.translate("paymentPart"), AlignLeft, LnRight)

	o.setY(197)
	for _, e := range c.Information {
		o.setX(paymentInfoX)
		o.drawElement(e, &paymentSizing)
	}
	return nil
}

func (o *Output) drawCurrency(r Region, ca CurrencyAmount) error {
	s := sizingFor(r)
	o.drawColumn(ca.currencyElements(), s.currencyX, s)
	return nil
}

func (o *Output) drawAmount(r Region, ca CurrencyAmount) error {
	s := sizingFor(r)
	o.drawColumn(ca.amountElements(), s.amountX, s)
	return nil
}

func (o *Output) drawColumn(elems []Element, x float64, s *sizing) {
	o.canvas.SetCellHeightRatio(currencyAmountCellRatio)
	o.setY(currencyAmountY)
	for _, e := range elems {
		o.setX(x)
		o.drawElement(e, s)
	}
}

func (o *Output) drawFurtherInformation(c *Content) error {
	o.canvas.SetCellHeightRatio(paymentCellRatio)
	o.setY(furtherInfoY)
	o.canvas.SetFont(Helvetica, Regular, 7)
	for _, e := range c.FurtherInformation {
		o.setX(paymentX)
		o.drawElement(e, &receiptSizing)
	}
	return nil
}

func (o *Output) drawElement(e Element, s *sizing) {
	switch e := e.(type) {
	case Title:
		o.canvas.SetFont(Helvetica, Bold, s.titleSize)
		o.canvas.Cell(0, 0, o.translate(stripMarker(e.Key)), AlignLeft, LnBelow)
	case Text:
		o.canvas.SetFont(Helvetica, Regular, s.textSize)
		o.canvas.MultiCell(0, 0, stripMarker(e.Body), AlignLeft, LnBelow)
		o.canvas.Ln(s.lineFeed)
	case Placeholder:
		o.drawCorners(s.placeholder)
	case CurrencyAmount:
		o.drawColumn(e.currencyElements(), s.currencyX, s)
		o.drawColumn(e.amountElements(), s.amountX, s)
	default:
		panic(fmt.Sprintf("unexpected element type %T", e))
	}
}

// drawCorners draws the four corners of a box for hand-written content.
func (o *Output) drawCorners(b box) {
	o.canvas.SetLineStyle(LineStyle{Width: 0.3, Color: black})

	left, top := b.x, b.y
	right, bottom := b.x+b.w, b.y+b.h

	o.line(left, top, left+cornerLength, top)
	o.line(left, top, left, top+cornerLength)

	o.line(right, top, right-cornerLength, top)
	o.line(right, top, right, top+cornerLength)

	o.line(left, bottom, left+cornerLength, bottom)
	o.line(left, bottom, left, bottom-cornerLength)

	o.line(right, bottom, right-cornerLength, bottom)
	o.line(right, bottom, right, bottom-cornerLength)
}
