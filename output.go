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
	"go.uber.org/zap"

	"seehuhn.de/go/qrbill/qrcode"
	"seehuhn.de/go/qrbill/translation"
)

// Translator looks up captions.
type Translator interface {
	Translate(key, lang string) string
}

// Output draws one payment part onto a canvas.
type Output struct {
	doc    Document
	lang   string
	canvas Canvas

	offset    Offset
	format    qrcode.Format
	tr        Translator
	log       *zap.Logger
	printable bool

	started bool
}

// Option configures an [Output].
type Option func(*Output)

// WithOffset shifts the payment part by dx millimetres to the right and dy
// millimetres down.  Use a negative dy to move the payment part up the page.
// Canvases may reject positions which end up left of or above the page.
func WithOffset(dx, dy float64) Option {
	return func(o *Output) {
		o.offset = Offset{DX: dx, DY: dy}
	}
}

// WithImageFormat selects the file format used to embed the QR code.
// Only pixel based formats can be drawn.
func WithImageFormat(format qrcode.Format) Option {
	return func(o *Output) {
		o.format = format
	}
}

// WithTranslator replaces the built-in caption tables.
func WithTranslator(tr Translator) Option {
	return func(o *Output) {
		o.tr = tr
	}
}

// WithLogger sets the logger used to report progress and failures.
func WithLogger(log *zap.Logger) Option {
	return func(o *Output) {
		o.log = log
	}
}

// New returns an Output which draws the payment part for doc onto canvas,
// with captions in the given language.
func New(doc Document, lang string, canvas Canvas, opts ...Option) *Output {
	o := &Output{
		doc:    doc,
		lang:   lang,
		canvas: canvas,
		format: qrcode.PNG,
		tr:     translation.Tables{},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetPrintable controls whether the separation lines and the "separate
// before paying in" caption are drawn.  This is needed when the payment
// part is printed on plain paper, rather than on perforated paper.
func (o *Output) SetPrintable(printable bool) *Output {
	o.printable = printable
	return o
}

// Render draws the payment part.
//
// If drawing fails, the canvas is left with a partially drawn payment
// part.  Render can only be called once for each Output.
func (o *Output) Render() error {
	if o.started {
		return ErrAlreadyRendered
	}
	o.started = true

	log := o.log.With(
		zap.String("lang", o.lang),
		zap.Float64("dx", o.offset.DX),
		zap.Float64("dy", o.offset.DY),
		zap.Bool("printable", o.printable),
		zap.Stringer("format", o.format),
	)
	log.Debug("rendering payment part")

	receipt := ReceiptContent(o.doc)
	payment := PaymentPartContent(o.doc)

	steps := []struct {
		region Region
		name   string
		draw   func() error
	}{
		{noRegion, "separation marks", o.drawSeparation},
		{Receipt, "information", func() error { return o.drawReceiptInformation(receipt) }},
		{Receipt, "currency", func() error { return o.drawCurrency(Receipt, receipt.CurrencyAmount) }},
		{Receipt, "amount", func() error { return o.drawAmount(Receipt, receipt.CurrencyAmount) }},
		{PaymentPart, "QR code", o.drawQRCode},
		{PaymentPart, "information", func() error { return o.drawPaymentInformation(payment) }},
		{PaymentPart, "currency", func() error { return o.drawCurrency(PaymentPart, payment.CurrencyAmount) }},
		{PaymentPart, "amount", func() error { return o.drawAmount(PaymentPart, payment.CurrencyAmount) }},
		{PaymentPart, "further information", func() error { return o.drawFurtherInformation(payment) }},
	}

	o.canvas.SetAutoPageBreak(false)
	for _, step := range steps {
		err := step.draw()
		if err == nil {
			err = o.canvas.Err()
		}
		if err != nil {
			err = &RenderError{Region: step.region.String(), Step: step.name, Err: err}
			log.Warn("payment part incomplete", zap.Error(err))
			return err
		}
	}

	log.Debug("payment part done")
	return nil
}
