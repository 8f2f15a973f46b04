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

package pdfcanvas

import (
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/qrbill"
)

// getFont returns the font for the given style, loading it on first use.
func (c *Canvas) getFont(style qrbill.FontStyle) (fontInstance, error) {
	if F, ok := c.fonts[style]; ok {
		return F, nil
	}

	var F fontInstance
	var err error
	if fileName, ok := c.fontFiles[style]; ok {
		F, err = loadFontFile(fileName)
	} else if style == qrbill.Bold {
		F, err = standard.HelveticaBold.New(nil)
	} else {
		F, err = standard.Helvetica.New(nil)
	}
	if err != nil {
		return nil, err
	}

	c.fonts[style] = F
	return F, nil
}

func loadFontFile(fileName string) (fontInstance, error) {
	info, err := sfnt.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return truetype.New(info, nil)
}
