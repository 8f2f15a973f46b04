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

// Address is a postal address in either structured or combined form.
//
// An address is in combined form if AddressLine2 is set.  In this case
// Street, BuildingNumber, PostalCode and Town are ignored.
type Address struct {
	Name string `json:"name"`

	Street         string `json:"street,omitempty"`
	BuildingNumber string `json:"buildingNumber,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Town           string `json:"town,omitempty"`

	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`

	// Country is the two-letter ISO 3166 country code.
	Country string `json:"country"`
}

// IsCombined reports whether the address uses the combined form.
func (a *Address) IsCombined() bool {
	return a.AddressLine2 != ""
}

// addressType returns the address type used in the QR code payload.
func (a *Address) addressType() string {
	if a.IsCombined() {
		return "K"
	}
	return "S"
}

// Lines returns the address as printed on the payment part.
// Postal codes outside Switzerland and Liechtenstein are prefixed
// with the country code.
func (a *Address) Lines() []string {
	lines := []string{a.Name}
	var town string
	if a.IsCombined() {
		if a.AddressLine1 != "" {
			lines = append(lines, a.AddressLine1)
		}
		town = a.AddressLine2
	} else {
		street := strings.TrimSpace(a.Street + " " + a.BuildingNumber)
		if street != "" {
			lines = append(lines, street)
		}
		town = strings.TrimSpace(a.PostalCode + " " + a.Town)
	}
	country := strings.ToUpper(a.Country)
	if country != "CH" && country != "LI" && country != "" {
		town = country + " - " + town
	}
	return append(lines, town)
}

func (a *Address) String() string {
	return strings.Join(a.Lines(), "\n")
}

// payloadFields returns the seven address fields of the QR code payload.
func (a *Address) payloadFields() []string {
	if a == nil {
		return make([]string, 7)
	}
	if a.IsCombined() {
		return []string{"K", a.Name, a.AddressLine1, a.AddressLine2, "", "", a.Country}
	}
	return []string{"S", a.Name, a.Street, a.BuildingNumber, a.PostalCode, a.Town, a.Country}
}
