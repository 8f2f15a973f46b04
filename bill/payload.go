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

package bill

import "strings"

// Payload returns the text encoded in the Swiss QR code of the bill,
// in version 2.0 of the QR-bill data format.
func (b *Bill) Payload() string {
	fields := []string{
		"SPC",  // QR type
		"0200", // version
		"1",    // coding type: UTF-8 restricted to the Latin character set
		strings.ToUpper(compact(b.Account)),
	}
	fields = append(fields, b.Creditor.payloadFields()...)
	fields = append(fields, make([]string, 7)...) // ultimate creditor, reserved

	amount := ""
	if b.Amount.Valid {
		amount = b.Amount.Decimal.StringFixed(2)
	}
	fields = append(fields, amount, b.Currency)
	fields = append(fields, b.Debtor.payloadFields()...)

	fields = append(fields,
		string(b.Reference.kind()),
		compact(b.Reference.Number),
		b.Message,
		"EPD",
	)
	if b.BillInformation != "" || len(b.AlternativeSchemes) > 0 {
		fields = append(fields, b.BillInformation)
	}
	for _, alt := range b.AlternativeSchemes {
		fields = append(fields, alt.Parameter)
	}

	return strings.Join(fields, "\n")
}
