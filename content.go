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
	"github.com/shopspring/decimal"

	"seehuhn.de/go/qrbill/qrcode"
)

// Document gives access to the data of a QR-bill.
// All strings are formatted for display.
type Document interface {
	CreditorAccount() string
	CreditorAddress() string

	// PaymentReference returns the empty string if there is no reference.
	PaymentReference() string

	// AdditionalInformation returns the empty string if there is no
	// additional information.
	AdditionalInformation() string

	// UltimateDebtor returns the empty string if the debtor is not known.
	UltimateDebtor() string

	CurrencyCode() string
	AmountDue() decimal.NullDecimal

	// FurtherInformation returns one line per alternative procedure.
	FurtherInformation() []string

	// QRCode returns the Swiss QR code as an image file.
	QRCode(format qrcode.Format) ([]byte, error)
}

// Content is the material shown in one region of a payment part.
type Content struct {
	Information        []Element
	CurrencyAmount     CurrencyAmount
	FurtherInformation []Element
}

// ReceiptContent returns the content of the receipt.
func ReceiptContent(doc Document) *Content {
	info := creditorElements(doc)
	return &Content{
		Information:    appendDebtor(info, doc),
		CurrencyAmount: currencyAmount(doc),
	}
}

// PaymentPartContent returns the content of the payment part.
func PaymentPartContent(doc Document) *Content {
	info := creditorElements(doc)
	if add := doc.AdditionalInformation(); add != "" {
		info = append(info,
			Title{Key: textMarker + "additionalInformation"},
			Text{Body: add},
		)
	}
	c := &Content{
		Information:    appendDebtor(info, doc),
		CurrencyAmount: currencyAmount(doc),
	}
	for _, line := range doc.FurtherInformation() {
		c.FurtherInformation = append(c.FurtherInformation, Text{Body: line})
	}
	return c
}

func creditorElements(doc Document) []Element {
	info := []Element{
		Title{Key: textMarker + "creditor"},
		Text{Body: doc.CreditorAccount() + "\n" + doc.CreditorAddress()},
	}
	if ref := doc.PaymentReference(); ref != "" {
		info = append(info,
			Title{Key: textMarker + "reference"},
			Text{Body: ref},
		)
	}
	return info
}

func appendDebtor(info []Element, doc Document) []Element {
	if debtor := doc.UltimateDebtor(); debtor != "" {
		return append(info,
			Title{Key: textMarker + "payableBy"},
			Text{Body: debtor},
		)
	}
	return append(info,
		Title{Key: textMarker + "payableByName"},
		Placeholder{},
	)
}

func currencyAmount(doc Document) CurrencyAmount {
	return CurrencyAmount{
		Currency: doc.CurrencyCode(),
		Amount:   doc.AmountDue(),
	}
}
