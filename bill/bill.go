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

// Package bill describes the data printed on a Swiss QR-bill.
//
// A [Bill] knows how to format its fields for display on the payment part,
// how to encode itself as a QR code payload and how to check its fields for
// consistency.
package bill

import (
	"strings"

	"github.com/shopspring/decimal"

	"seehuhn.de/go/qrbill/qrcode"
)

// Bill holds the data of one QR-bill.
type Bill struct {
	// Account is the IBAN or QR-IBAN of the creditor.
	Account  string  `json:"account"`
	Creditor Address `json:"creditor"`

	// Amount is absent if the payer fills in the amount by hand.
	Amount   decimal.NullDecimal `json:"amount"`
	Currency string              `json:"currency"`

	// Debtor is nil if the payer fills in their address by hand.
	Debtor *Address `json:"debtor,omitempty"`

	Reference Reference `json:"reference"`

	// Message is the unstructured message to the creditor.
	Message string `json:"message,omitempty"`

	// BillInformation is the structured bill information.
	BillInformation string `json:"billInformation,omitempty"`

	AlternativeSchemes []AlternativeScheme `json:"alternativeSchemes,omitempty"`
}

// AlternativeScheme holds the parameters of an alternative payment
// procedure.
type AlternativeScheme struct {
	Name      string `json:"name"`
	Parameter string `json:"parameter"`
}

// CreditorAccount returns the account, formatted for display.
func (b *Bill) CreditorAccount() string {
	return FormatIBAN(b.Account)
}

// CreditorAddress returns the creditor address, one line per address line.
func (b *Bill) CreditorAddress() string {
	return b.Creditor.String()
}

// PaymentReference returns the payment reference, formatted for display.
// The result is empty if the bill has no reference.
func (b *Bill) PaymentReference() string {
	return b.Reference.String()
}

// AdditionalInformation returns the message and the bill information,
// one per line.
func (b *Bill) AdditionalInformation() string {
	var lines []string
	for _, s := range []string{b.Message, b.BillInformation} {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, "\n")
}

// UltimateDebtor returns the debtor address, or the empty string if the
// bill has no debtor.
func (b *Bill) UltimateDebtor() string {
	if b.Debtor == nil {
		return ""
	}
	return b.Debtor.String()
}

// CurrencyCode returns the ISO 4217 currency code.
func (b *Bill) CurrencyCode() string {
	return b.Currency
}

// AmountDue returns the amount to pay.
func (b *Bill) AmountDue() decimal.NullDecimal {
	return b.Amount
}

// FurtherInformation returns the alternative procedures for display,
// one entry per procedure.
func (b *Bill) FurtherInformation() []string {
	var res []string
	for _, alt := range b.AlternativeSchemes {
		if alt.Name == "" {
			res = append(res, alt.Parameter)
		} else {
			res = append(res, alt.Name+": "+alt.Parameter)
		}
	}
	return res
}

// QRCode returns the Swiss QR code of the bill as an image file.
func (b *Bill) QRCode(format qrcode.Format) ([]byte, error) {
	return qrcode.Encode(b.Payload(), format)
}
