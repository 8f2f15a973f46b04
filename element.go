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
	"strings"

	"github.com/shopspring/decimal"
)

// Element is one item of content on a payment part.
// The concrete types are [Title], [Text], [Placeholder] and
// [CurrencyAmount].
type Element interface {
	isElement()
}

// Title is a caption.  Key is looked up in the caption tables.
type Title struct {
	Key string
}

// Text is a block of text, shown as given.  Newlines start new lines.
type Text struct {
	Body string
}

// Placeholder marks a box which the payer fills in by hand.  It is drawn as
// four corner marks.
type Placeholder struct{}

// CurrencyAmount is the currency and amount row of a payment part.
// If Amount is not valid, the amount caption is still drawn, followed by a
// box for a hand-written amount in place of the amount text.
type CurrencyAmount struct {
	Currency string
	Amount   decimal.NullDecimal
}

func (Title) isElement()          {}
func (Text) isElement()           {}
func (Placeholder) isElement()    {}
func (CurrencyAmount) isElement() {}

// textMarker is the prefix of strings which name a caption key.
const textMarker = "text."

func stripMarker(s string) string {
	return strings.TrimPrefix(s, textMarker)
}

// currencyElements returns the content of the currency column.
func (ca CurrencyAmount) currencyElements() []Element {
	return []Element{
		Title{Key: textMarker + "currency"},
		Text{Body: ca.Currency},
	}
}

// amountElements returns the content of the amount column.
func (ca CurrencyAmount) amountElements() []Element {
	if !ca.Amount.Valid {
		return []Element{
			Title{Key: textMarker + "amount"},
			Placeholder{},
		}
	}
	return []Element{
		Title{Key: textMarker + "amount"},
		Text{Body: FormatAmount(ca.Amount.Decimal)},
	}
}

// FormatAmount formats an amount with two decimals, using spaces to group
// the digits before the decimal point in threes, like "2 500.25".
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	b := &strings.Builder{}
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
