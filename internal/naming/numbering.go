// Copyright (c) 2025 The wavrig authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package naming

import (
	"fmt"
	"strings"
)

// Scheme describes a numeric filename prefix style: how many digits the
// number carries and which separator sits between it and the name.
type Scheme struct {
	DigitWidth int
	Separator  string
}

// Candidate orders double as tie-breakers: when two styles are equally
// common in a directory, the earlier entry wins. Longest separator first,
// so " - " is matched before bare " " or "-".
var (
	widthOrder     = []int{2, 1, 3}
	separatorOrder = []string{"_", "-", ".", " ", " - "}
	matchOrder     = []string{" - ", "_", "-", ".", " "}
)

// DefaultScheme is used when a directory holds no prefixed names at all.
func DefaultScheme() Scheme {
	return Scheme{DigitWidth: 2, Separator: "_"}
}

// DetectScheme inspects existing names and returns the dominant prefix
// scheme along with the next free number. Digit width and separator are
// voted on independently among the names that do carry a prefix; the next
// number is one past the highest prefix seen (gaps are never refilled).
func DetectScheme(names []string) (Scheme, int) {
	widthVotes := map[int]int{}
	sepVotes := map[string]int{}

	maxNumber := 0
	prefixed := 0
	for _, name := range names {
		p, ok := parsePrefix(name)
		if !ok {
			continue
		}
		prefixed++
		widthVotes[p.width]++
		sepVotes[p.separator]++
		if p.number > maxNumber {
			maxNumber = p.number
		}
	}

	if prefixed == 0 {
		return DefaultScheme(), 1
	}

	scheme := Scheme{DigitWidth: widthOrder[0], Separator: separatorOrder[0]}
	best := widthVotes[scheme.DigitWidth]
	for _, w := range widthOrder[1:] {
		if widthVotes[w] > best {
			scheme.DigitWidth, best = w, widthVotes[w]
		}
	}

	best = sepVotes[scheme.Separator]
	for _, s := range separatorOrder[1:] {
		if sepVotes[s] > best {
			scheme.Separator, best = s, sepVotes[s]
		}
	}
	return scheme, maxNumber + 1
}

// ApplyPrefix prepends number to name in the given scheme. A name that
// already carries any recognized prefix is returned unchanged, so batch
// renumbering cannot double-prefix. A prefix in a foreign scheme also
// counts as prefixed and is deliberately left alone.
func ApplyPrefix(name string, number int, s Scheme) string {
	if HasNumericPrefix(name) {
		return name
	}
	return fmt.Sprintf("%0*d%s%s", s.DigitWidth, number, s.Separator, name)
}

// HasNumericPrefix reports whether name starts with a 1-3 digit number
// followed by a recognized separator and at least one non-separator rune.
func HasNumericPrefix(name string) bool {
	_, ok := parsePrefix(name)
	return ok
}

type prefix struct {
	number    int
	width     int
	separator string
}

func parsePrefix(name string) (prefix, bool) {
	digits := 0
	for digits < len(name) && name[digits] >= '0' && name[digits] <= '9' {
		digits++
	}
	if digits < 1 || digits > 3 {
		return prefix{}, false
	}

	rest := name[digits:]
	for _, sep := range matchOrder {
		if !strings.HasPrefix(rest, sep) {
			continue
		}
		tail := rest[len(sep):]
		if tail == "" || isSeparatorByte(tail[0]) {
			continue
		}

		n := 0
		for i := 0; i < digits; i++ {
			n = n*10 + int(name[i]-'0')
		}
		return prefix{number: n, width: digits, separator: sep}, true
	}
	return prefix{}, false
}

func isSeparatorByte(b byte) bool {
	return b == '_' || b == '-' || b == '.' || b == ' '
}
