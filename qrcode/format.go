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

// Package qrcode renders Swiss QR-bill payloads as QR code images.
//
// All images carry the Swiss cross in their centre, as required for
// QR-bills.  Raster images are returned as PNG files, vector images as SVG
// files.
package qrcode

import (
	"fmt"
	"strings"
)

// Format selects the file format of a QR code image.
type Format int

// These are the supported image formats.
const (
	PNG Format = iota + 1
	SVG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// IsRaster reports whether images in this format are pixel based.
func (f Format) IsRaster() bool {
	return f == PNG
}

// ParseFormat converts a file extension like "png" or ".svg" into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("unknown QR code image format %q", s)
}
