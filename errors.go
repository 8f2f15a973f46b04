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

package qrbill

import (
	"errors"
	"fmt"
)

// ErrUnsupportedImageFormat is returned by [Output.Render] if the QR code
// would have to be embedded in a format which is not pixel based.
var ErrUnsupportedImageFormat = errors.New("unsupported QR code image format")

// ErrAlreadyRendered is returned if [Output.Render] is called more than
// once on the same Output.
var ErrAlreadyRendered = errors.New("payment part already rendered")

// RenderError describes a failed drawing step.
type RenderError struct {
	// Region is the part of the page where the failure occurred,
	// or the empty string for the separation marks.
	Region string

	// Step names the drawing step which failed.
	Step string

	Err error
}

func (err *RenderError) Error() string {
	if err.Region == "" {
		return fmt.Sprintf("qrbill: %s: %v", err.Step, err.Err)
	}
	return fmt.Sprintf("qrbill: %s: %s: %v", err.Region, err.Step, err.Err)
}

func (err *RenderError) Unwrap() error {
	return err.Err
}
