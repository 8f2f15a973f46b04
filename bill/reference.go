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
	"strings"
)

// ReferenceType describes the kind of payment reference.
type ReferenceType string

// These are the reference types defined for QR-bills.
const (
	// QRR is a 27 digit QR reference, used with QR-IBANs.
	QRR ReferenceType = "QRR"

	// SCOR is an ISO 11649 creditor reference.
	SCOR ReferenceType = "SCOR"

	// NON indicates that the bill has no reference.
	NON ReferenceType = "NON"
)

// Reference is a payment reference.
type Reference struct {
	Type   ReferenceType `json:"type"`
	Number string        `json:"number,omitempty"`
}

// kind returns the reference type, defaulting to NON.
func (r Reference) kind() ReferenceType {
	if r.Type == "" {
		return NON
	}
	return r.Type
}

// String returns the reference formatted for display.
// QR references are grouped in blocks of five digits from the right,
// creditor references in blocks of four characters from the left.
func (r Reference) String() string {
	number := compact(r.Number)
	switch r.kind() {
	case QRR:
		return groupRight(number, 5)
	case SCOR:
		return groupLeft(number, 4)
	default:
		return ""
	}
}

// mod10Table is the table of the recursive modulo 10 check digit
// algorithm.
var mod10Table = [10]int{0, 9, 4, 6, 8, 2, 7, 1, 3, 5}

// mod10 computes the recursive modulo 10 check digit of a string of
// decimal digits.
func mod10(digits string) (int, error) {
	carry := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid digit %q", c)
		}
		carry = mod10Table[(carry+int(c-'0'))%10]
	}
	return (10 - carry) % 10, nil
}

// QRReference builds a 27 digit QR reference from an optional customer
// identification number (as assigned by some banks) and a reference
// number.  The reference number is padded with zeros and the check digit
// is appended.
func QRReference(customerID, number string) (string, error) {
	customerID = compact(customerID)
	number = compact(number)
	if len(customerID)+len(number) > 26 {
		return "", errors.New("bill: reference number too long")
	}
	ref := customerID + strings.Repeat("0", 26-len(customerID)-len(number)) + number
	check, err := mod10(ref)
	if err != nil {
		return "", fmt.Errorf("bill: %w", err)
	}
	return ref + string(rune('0'+check)), nil
}

func compact(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

func groupLeft(s string, n int) string {
	var groups []string
	for len(s) > n {
		groups = append(groups, s[:n])
		s = s[n:]
	}
	if s != "" {
		groups = append(groups, s)
	}
	return strings.Join(groups, " ")
}

func groupRight(s string, n int) string {
	var groups []string
	for len(s) > n {
		groups = append([]string{s[len(s)-n:]}, groups...)
		s = s[:len(s)-n]
	}
	if s != "" {
		groups = append([]string{s}, groups...)
	}
	return strings.Join(groups, " ")
}

// FormatIBAN returns the IBAN in groups of four characters.
func FormatIBAN(iban string) string {
	return groupLeft(strings.ToUpper(compact(iban)), 4)
}
