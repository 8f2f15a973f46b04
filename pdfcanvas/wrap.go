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
	"strings"
)

// wordToken is a word of a paragraph, with its width.
type wordToken struct {
	Text  string
	Width float64
}

// tokenizeParagraph splits a paragraph into words.
func tokenizeParagraph(par string, measure func(string) float64) []wordToken {
	var tokens []wordToken
	for _, f := range strings.Fields(par) {
		tokens = append(tokens, wordToken{Text: f, Width: measure(f)})
	}
	return tokens
}

// breakLines wraps text into lines no wider than lineWidth.  Newlines in
// text always start a new line.  Lines are filled greedily, words which
// are too long for a line on their own are split between characters.
func breakLines(text string, lineWidth float64, measure func(string) float64) []string {
	spaceWidth := measure(" ")

	var lines []string
	for _, par := range strings.Split(text, "\n") {
		tokens := tokenizeParagraph(par, measure)
		if len(tokens) == 0 {
			lines = append(lines, "")
			continue
		}

		var current []string
		currentWidth := 0.0
		flush := func() {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
			currentWidth = 0
		}
		for _, tok := range tokens {
			if len(current) > 0 && currentWidth+spaceWidth+tok.Width > lineWidth {
				flush()
			}
			for len(current) == 0 && tok.Width > lineWidth {
				head, tail := splitWord(tok.Text, lineWidth, measure)
				if tail == "" {
					break
				}
				lines = append(lines, head)
				tok = wordToken{Text: tail, Width: measure(tail)}
			}

			if len(current) > 0 {
				currentWidth += spaceWidth
			}
			current = append(current, tok.Text)
			currentWidth += tok.Width
		}
		flush()
	}
	return lines
}

// splitWord returns the longest prefix of word which fits into width,
// and the remainder.  At least one character is always returned in head.
func splitWord(word string, width float64, measure func(string) float64) (head, tail string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
