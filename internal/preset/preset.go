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

// Package preset recovers sample references from hardware preset blobs.
//
// The preset format is undocumented. The only structure that could be
// recovered empirically is "null-terminated ASCII strings, some ending in
// .wav, optionally prefixed with a /-delimited path", so this is a
// best-effort token scanner, not a schema parser. Presets are read-only;
// nothing here ever writes one back.
package preset

import (
	"fmt"
	"os"
	"strings"
)

// MaxSlots is the number of sample slots a preset holds.
const MaxSlots = 8

// BlobSize is the fixed size of a preset file on disk. It is informational
// only; ExtractSamples accepts blobs of any length.
const BlobSize = 16 * 1024

// ExtractSamples scans blob for null-terminated printable-ASCII runs ending
// in ".wav" (case-insensitive) and returns up to MaxSlots sample names with
// any /-delimited path prefix removed. A blob with no valid tokens yields an
// empty slice; fewer than MaxSlots matches are returned as-is, not padded.
func ExtractSamples(blob []byte) []string {
	samples := make([]string, 0, MaxSlots)

	var token []byte
	for _, b := range blob {
		switch {
		case b == 0:
			if isWavName(token) {
				samples = append(samples, stripPath(string(token)))
				if len(samples) == MaxSlots {
					return samples
				}
			}
			token = token[:0]
		case b >= 32 && b <= 126:
			token = append(token, b)
		default:
			// A completed ".wav" run survives stray garbage bytes until its
			// terminator shows up. Observed in real presets, where a single
			// unprintable byte can sit between the name and its null.
			if !isWavName(token) {
				token = token[:0]
			}
		}
	}
	return samples
}

// ReadSamples reads the preset file at path and extracts its sample slots.
func ReadSamples(path string) ([]string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}
	return ExtractSamples(blob), nil
}

func isWavName(token []byte) bool {
	return len(token) >= 4 && strings.EqualFold(string(token[len(token)-4:]), ".wav")
}

func stripPath(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
