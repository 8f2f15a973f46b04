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

package translation

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
	}{
		{"de", language.German},
		{"fr", language.French},
		{"it", language.Italian},
		{"en", language.English},
		{"fr-CH", language.French},
		{"it_CH", language.Italian},
		{"en-GB", language.English},
		{"rm", language.German},
		{"", language.German},
		{"not a language", language.German},
	}
	for _, c := range cases {
		if got := Match(c.in); got != c.want {
			t.Errorf("Match(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGet(t *testing.T) {
	if got := Get(PaymentPart, "en"); got != "Payment part" {
		t.Errorf("wrong caption %q", got)
	}
	if got := Get(Receipt, "fr"); got != "Récépissé" {
		t.Errorf("wrong caption %q", got)
	}
	if got := Get("unknown", "de"); got != "unknown" {
		t.Errorf("unknown key translated to %q", got)
	}
}

func TestTablesComplete(t *testing.T) {
	keys := tables[language.German]
	for tag, table := range tables {
		if len(table) != len(keys) {
			t.Errorf("%v: %d captions, want %d", tag, len(table), len(keys))
		}
		for key := range keys {
			if table[key] == "" {
				t.Errorf("%v: missing caption %q", tag, key)
			}
		}
	}
}
