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

// Package translation provides the fixed captions of a QR-bill payment part
// in the four languages allowed on Swiss QR-bills.
package translation

import (
	"strings"

	"golang.org/x/text/language"
)

// These are the caption keys known to all tables.
const (
	PaymentPart           = "paymentPart"
	Creditor              = "creditor"
	Reference             = "reference"
	AdditionalInformation = "additionalInformation"
	Currency              = "currency"
	Amount                = "amount"
	Receipt               = "receipt"
	AcceptancePoint       = "acceptancePoint"
	Separate              = "separate"
	PayableBy             = "payableBy"
	PayableByName         = "payableByName"
	InFavourOf            = "inFavourOf"
	DoNotUseForPayment    = "doNotUseForPayment"
)

var tables = map[language.Tag]map[string]string{
	language.German: {
		PaymentPart:           "Zahlteil",
		Creditor:              "Konto / Zahlbar an",
		Reference:             "Referenz",
		AdditionalInformation: "Zusätzliche Informationen",
		Currency:              "Währung",
		Amount:                "Betrag",
		Receipt:               "Empfangsschein",
		AcceptancePoint:       "Annahmestelle",
		Separate:              "Vor der Einzahlung abzutrennen",
		PayableBy:             "Zahlbar durch",
		PayableByName:         "Zahlbar durch (Name/Adresse)",
		InFavourOf:            "Zugunsten",
		DoNotUseForPayment:    "NICHT ZUR ZAHLUNG VERWENDEN",
	},
	language.French: {
		PaymentPart:           "Section paiement",
		Creditor:              "Compte / Payable à",
		Reference:             "Référence",
		AdditionalInformation: "Informations supplémentaires",
		Currency:              "Monnaie",
		Amount:                "Montant",
		Receipt:               "Récépissé",
		AcceptancePoint:       "Point de dépôt",
		Separate:              "A détacher avant le versement",
		PayableBy:             "Payable par",
		PayableByName:         "Payable par (nom/adresse)",
		InFavourOf:            "En faveur de",
		DoNotUseForPayment:    "NE PAS UTILISER POUR LE PAIEMENT",
	},
	language.Italian: {
		PaymentPart:           "Sezione pagamento",
		Creditor:              "Conto / Pagabile a",
		Reference:             "Riferimento",
		AdditionalInformation: "Informazioni supplementari",
		Currency:              "Valuta",
		Amount:                "Importo",
		Receipt:               "Ricevuta",
		AcceptancePoint:       "Punto di accettazione",
		Separate:              "Da staccare prima del versamento",
		PayableBy:             "Pagabile da",
		PayableByName:         "Pagabile da (nome/indirizzo)",
		InFavourOf:            "A favore di",
		DoNotUseForPayment:    "NON UTILIZZARE PER IL PAGAMENTO",
	},
	language.English: {
		PaymentPart:           "Payment part",
		Creditor:              "Account / Payable to",
		Reference:             "Reference",
		AdditionalInformation: "Additional information",
		Currency:              "Currency",
		Amount:                "Amount",
		Receipt:               "Receipt",
		AcceptancePoint:       "Acceptance point",
		Separate:              "Separate before paying in",
		PayableBy:             "Payable by",
		PayableByName:         "Payable by (name/address)",
		InFavourOf:            "In favour of",
		DoNotUseForPayment:    "DO NOT USE FOR PAYMENT",
	},
}

// Supported lists the languages with a caption table.
// The first entry is used when no other language matches.
var Supported = []language.Tag{
	language.German,
	language.French,
	language.Italian,
	language.English,
}

var matcher = language.NewMatcher(Supported)

// Match returns the supported language closest to lang.
// Language codes like "fr", "de-CH" and "it_CH" are accepted.
func Match(lang string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// Get returns the caption for key in the given language.
// Unknown keys are returned unchanged.
func Get(key, lang string) string {
	if s, ok := tables[Match(lang)][key]; ok {
		return s
	}
	return key
}

// Tables implements caption lookup using the built-in tables.
type Tables struct{}

// Translate returns the caption for key in the given language.
func (Tables) Translate(key, lang string) string {
	return Get(key, lang)
}
