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

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// These errors are reported by [Bill.Validate].
var (
	ErrInvalidIBAN      = errors.New("invalid IBAN")
	ErrInvalidReference = errors.New("invalid payment reference")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrMissingField     = errors.New("missing field")
	ErrTooManySchemes   = errors.New("too many alternative schemes")
)

// MaxAlternativeSchemes is the number of alternative procedures a QR-bill
// can carry.
const MaxAlternativeSchemes = 2

var maxAmount = decimal.RequireFromString("999999999.99")

// Validate checks the bill for consistency.
// Check digits of the IBAN and of the reference are verified,
// and QR references are only accepted together with a QR-IBAN.
func (b *Bill) Validate() error {
	iban := strings.ToUpper(compact(b.Account))
	if !validIBAN(iban) {
		return fmt.Errorf("%w %q", ErrInvalidIBAN, b.Account)
	}
	if err := b.Creditor.validate("creditor"); err != nil {
		return err
	}
	if b.Debtor != nil {
		if err := b.Debtor.validate("debtor"); err != nil {
			return err
		}
	}

	if b.Currency != "CHF" && b.Currency != "EUR" {
		return fmt.Errorf("%w %q", ErrInvalidCurrency, b.Currency)
	}
	if b.Amount.Valid {
		a := b.Amount.Decimal
		if a.IsNegative() || a.GreaterThan(maxAmount) || !a.Equal(a.Round(2)) {
			return fmt.Errorf("%w %s", ErrInvalidAmount, a)
		}
	}

	number := compact(b.Reference.Number)
	qrIBAN := isQRIBAN(iban)
	switch b.Reference.kind() {
	case QRR:
		check, err := mod10(number[:max(len(number)-1, 0)])
		if len(number) != 27 || err != nil || int(number[26]-'0') != check {
			return fmt.Errorf("%w: QR reference %q", ErrInvalidReference, b.Reference.Number)
		}
		if !qrIBAN {
			return fmt.Errorf("%w: QR reference requires a QR-IBAN", ErrInvalidReference)
		}
	case SCOR:
		if len(number) < 5 || len(number) > 25 || !strings.HasPrefix(number, "RF") || !mod97(number) {
			return fmt.Errorf("%w: creditor reference %q", ErrInvalidReference, b.Reference.Number)
		}
	case NON:
		if number != "" {
			return fmt.Errorf("%w: reference number without reference type", ErrInvalidReference)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidReference, b.Reference.Type)
	}
	if qrIBAN && b.Reference.kind() != QRR {
		return fmt.Errorf("%w: QR-IBAN requires a QR reference", ErrInvalidReference)
	}

	if len(b.AlternativeSchemes) > MaxAlternativeSchemes {
		return ErrTooManySchemes
	}
	return nil
}

func (a *Address) validate(role string) error {
	if a.Name == "" {
		return fmt.Errorf("%w: %s name", ErrMissingField, role)
	}
	if !a.IsCombined() && (a.PostalCode == "" || a.Town == "") {
		return fmt.Errorf("%w: %s postal code and town", ErrMissingField, role)
	}
	if len(a.Country) != 2 {
		return fmt.Errorf("%w: %s country", ErrMissingField, role)
	}
	return nil
}

// validIBAN checks length, country and check digits of a Swiss or
// Liechtenstein IBAN.
func validIBAN(iban string) bool {
	if len(iban) != 21 {
		return false
	}
	if !strings.HasPrefix(iban, "CH") && !strings.HasPrefix(iban, "LI") {
		return false
	}
	return mod97(iban)
}

// isQRIBAN reports whether the institution identifier of a valid IBAN lies
// in the range reserved for QR-IBANs.
func isQRIBAN(iban string) bool {
	if len(iban) < 9 {
		return false
	}
	iid := iban[4:9]
	return iid >= "30000" && iid <= "31999"
}

// mod97 implements the ISO 7064 check used by IBANs and ISO 11649
// creditor references: move the first four characters to the end,
// replace letters by numbers and check that the remainder is 1.
func mod97(s string) bool {
	s = s[4:] + s[:4]
	digits := &strings.Builder{}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits.WriteRune(c)
		case c >= 'A' && c <= 'Z':
			fmt.Fprintf(digits, "%d", c-'A'+10)
		default:
			return false
		}
	}
	n, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return false
	}
	return new(big.Int).Mod(n, big.NewInt(97)).Int64() == 1
}
