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

// Package qrbill draws the payment part of a Swiss QR-bill onto a page.
//
// The payment part occupies the bottom 105mm of an A4 page.  It consists of
// the receipt on the left and the payment part proper, with the Swiss QR
// code, on the right.  All positions are fixed by the Swiss Implementation
// Guidelines for the QR-bill; this package maps the data of a bill onto
// these positions and issues the corresponding drawing calls on a [Canvas].
//
// A typical use looks as follows:
//
//	out := qrbill.New(doc, "de", canvas)
//	err := out.SetPrintable(true).Render()
//
// Every [Output] draws one payment part.  To place several payment parts
// on one page, use one Output per payment part and shift all but one of
// them using [WithOffset].
package qrbill
