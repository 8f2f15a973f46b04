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

// Qrbill-demo writes a PDF file with example QR-bill payment parts.
//
// Without the -bill flag, four pages are written: two payment parts on one
// page, a bill with additional information and alternative schemes, a bill
// which must not be used for payment, and a bill without amount.  With
// -bill, the bill is read from a JSON file and a single payment part is
// written.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"seehuhn.de/go/qrbill"
	"seehuhn.de/go/qrbill/bill"
	"seehuhn.de/go/qrbill/fpdfcanvas"
	"seehuhn.de/go/qrbill/pdfcanvas"
	"seehuhn.de/go/qrbill/qrcode"
	"seehuhn.de/go/qrbill/translation"
)

var (
	outName  = flag.String("o", "qrbill.pdf", "name of the output file")
	backend  = flag.String("backend", "pdf", "PDF library to use, either \"pdf\" or \"fpdf\"")
	billName = flag.String("bill", "", "read the bill from this JSON file")
	lang     = flag.String("lang", "", "language of the payment parts (default: French and English)")
	qrPNG    = flag.String("qr-png", "", "write the QR code to this PNG file")
	qrSVG    = flag.String("qr-svg", "", "write the QR code to this SVG file")
	verbose  = flag.Bool("v", false, "show debug output")
)

func main() {
	flag.Parse()

	var log *zap.Logger
	var err error
	if *verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	err = run(log)
	if err != nil {
		log.Error("cannot write QR-bill", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	b := exampleBill()
	if *billName != "" {
		var err error
		b, err = readBill(*billName)
		if err != nil {
			return err
		}
	}
	err := b.Validate()
	if err != nil {
		return err
	}

	err = writeQRCode(b, *qrPNG, qrcode.PNG)
	if err != nil {
		return err
	}
	err = writeQRCode(b, *qrSVG, qrcode.SVG)
	if err != nil {
		return err
	}

	out, err := os.Create(*outName)
	if err != nil {
		return err
	}
	defer out.Close()

	s, err := newSurface(*backend, out)
	if err != nil {
		return err
	}
	if *billName != "" {
		err = writeSingle(s, b, log)
	} else {
		err = writeExamples(s, b, log)
	}
	if err != nil {
		return err
	}
	err = s.Finish()
	if err != nil {
		return err
	}
	log.Info("PDF file written", zap.String("file", *outName), zap.String("backend", *backend))
	return out.Close()
}

func readBill(fileName string) (*bill.Bill, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	b := &bill.Bill{}
	err = json.Unmarshal(data, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return b, nil
}

func writeQRCode(b *bill.Bill, fileName string, format qrcode.Format) error {
	if fileName == "" {
		return nil
	}
	data, err := b.QRCode(format)
	if err != nil {
		return err
	}
	return os.WriteFile(fileName, data, 0o644)
}

func exampleBill() *bill.Bill {
	return &bill.Bill{
		Account: "CH4431999123000889012",
		Creditor: bill.Address{
			Name:         "Bénédicte Jäger",
			AddressLine1: "Rue du Grès 1268",
			AddressLine2: "2501 Biel",
			Country:      "CH",
		},
		Debtor: &bill.Address{
			Name:           "Pia-Maria Rutschmann-Schnyder",
			Street:         "Grosse Marktgasse",
			BuildingNumber: "28",
			PostalCode:     "9400",
			Town:           "Rorschach",
			Country:        "CH",
		},
		Amount:    decimal.NewNullDecimal(decimal.RequireFromString("2500.25")),
		Currency:  "CHF",
		Reference: bill.Reference{Type: bill.QRR, Number: "210000000003139471430009017"},
	}
}

// pickLang returns the language given on the command line, or def.
func pickLang(def string) string {
	if *lang != "" {
		return *lang
	}
	return def
}

func writeSingle(s surface, b *bill.Bill, log *zap.Logger) error {
	err := s.NewPage()
	if err != nil {
		return err
	}
	return qrbill.New(b, pickLang("de"), s, qrbill.WithLogger(log)).
		SetPrintable(true).Render()
}

func writeExamples(s surface, b *bill.Bill, log *zap.Logger) error {
	opt := qrbill.WithLogger(log)

	// page 1: two payment parts on one page
	err := s.NewPage()
	if err != nil {
		return err
	}
	err = qrbill.New(b, pickLang("fr"), s, opt).SetPrintable(true).Render()
	if err != nil {
		return err
	}
	err = qrbill.New(b, pickLang("en"), s, opt, qrbill.WithOffset(0, -110)).
		SetPrintable(true).Render()
	if err != nil {
		return err
	}

	// page 2: additional information and alternative schemes
	err = s.NewPage()
	if err != nil {
		return err
	}
	b.Message = "Invoice 1234568"
	b.BillInformation = "Billing information"
	b.AlternativeSchemes = []bill.AlternativeScheme{
		{Name: "Name AV1", Parameter: "UV;UltraPay005;12345"},
		{Name: "Name AV2", Parameter: "XY;XYService;54321"},
	}
	err = qrbill.New(b, pickLang("en"), s, opt).SetPrintable(true).Render()
	if err != nil {
		return err
	}

	// page 3: zero amount
	err = s.NewPage()
	if err != nil {
		return err
	}
	b.Message = translation.Get(translation.DoNotUseForPayment, "en")
	b.BillInformation = ""
	b.Amount = decimal.NewNullDecimal(decimal.Zero)
	err = qrbill.New(b, pickLang("en"), s, opt).SetPrintable(true).Render()
	if err != nil {
		return err
	}

	// page 4: no amount
	err = s.NewPage()
	if err != nil {
		return err
	}
	b.Message = "Thanks for your donation"
	b.Amount = decimal.NullDecimal{}
	return qrbill.New(b, pickLang("en"), s, opt).SetPrintable(true).Render()
}

// surface is a canvas which can start new pages.
type surface interface {
	qrbill.Canvas
	NewPage() error
	Finish() error
}

func newSurface(name string, w io.Writer) (surface, error) {
	switch name {
	case "pdf":
		c, err := pdfcanvas.New(w)
		if err != nil {
			return nil, err
		}
		return pdfSurface{c}, nil
	case "fpdf":
		return &fpdfSurface{Canvas: fpdfcanvas.New(), w: w}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

type pdfSurface struct {
	*pdfcanvas.Canvas
}

func (s pdfSurface) NewPage() error {
	return s.AddPage()
}

func (s pdfSurface) Finish() error {
	return s.Close()
}

type fpdfSurface struct {
	*fpdfcanvas.Canvas
	w io.Writer
}

func (s *fpdfSurface) NewPage() error {
	s.AddPage()
	return s.Err()
}

func (s *fpdfSurface) Finish() error {
	return s.Output(s.w)
}
