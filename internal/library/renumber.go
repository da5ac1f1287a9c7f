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
package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/wavrig/wavrig/internal/naming"
)

type Rename struct {
	From string
	To   string
}

// Renumber applies the directory's detected numbering scheme to every
// unprefixed .wav file, in sorted name order. Names that already carry a
// prefix, in any scheme, are left alone. Renames run one at a time so each
// conflict probe sees the directory's current state.
func (l *Library) Renumber(dir string) ([]Rename, error) {
	names, err := listWavNames(dir)
	if err != nil {
		return nil, err
	}

	scheme, next := naming.DetectScheme(names)

	var renames []Rename
	for _, name := range names {
		if naming.HasNumericPrefix(name) {
			continue
		}

		newName := naming.ApplyPrefix(name, next, scheme)
		next++

		newName = naming.Resolve(dir, newName)
		if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, newName)); err != nil {
			return renames, fmt.Errorf("rename %s: %w", name, err)
		}

		l.log.WithFields(logrus.Fields{
			"from": name,
			"to":   newName,
		}).Info("renumbered sample")

		renames = append(renames, Rename{From: name, To: newName})
	}
	return renames, nil
}
