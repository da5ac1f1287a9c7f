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

// Package naming implements collision-free filename generation and the
// numeric prefix scheme used to keep sample directories in play order.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxProbes bounds the sequential _N suffix search before falling back to a
// timestamp suffix.
const maxProbes = 999

// Resolve returns desiredName if no file with that name exists in dir,
// otherwise the first free name among base_1.ext, base_2.ext, ... Gaps left
// by deleted files are reused. When all 999 probes are taken, a unix-millis
// suffix is used instead; Resolve always produces some usable name and the
// caller is expected to create the file promptly (no lock is held between
// the existence probe and the write).
func Resolve(dir, desiredName string) string {
	if !exists(filepath.Join(dir, desiredName)) {
		return desiredName
	}

	base, ext := splitExt(desiredName)
	for i := 1; i <= maxProbes; i++ {
		name := fmt.Sprintf("%s_%d%s", base, i, ext)
		if !exists(filepath.Join(dir, name)) {
			return name
		}
	}
	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixMilli(), ext)
}

// Sanitize replaces characters that are invalid in FAT/NTFS filenames, plus
// ASCII control bytes, with underscores. It is total and idempotent; the
// empty string maps to itself.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, name)
}

// splitExt splits at the last dot, keeping the dot with the extension.
// A name without a dot has an empty extension.
func splitExt(name string) (base, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
