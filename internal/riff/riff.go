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
package riff

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the size of the outer RIFF header: "RIFF" + u32 size + "WAVE".
const HeaderSize = 12

var (
	// ErrInvalidContainer indicates the buffer does not carry a RIFF/WAVE signature.
	ErrInvalidContainer = errors.New("not a RIFF/WAVE container")

	// ErrNoDataChunk indicates a well-formed container with no 'data' chunk.
	// Such a file cannot play on the target hardware, so rewrites refuse it.
	ErrNoDataChunk = errors.New("missing 'data' chunk")
)

// Chunk describes one top-level chunk within a RIFF container.
// Size excludes the 8-byte chunk header and the optional pad byte
// that follows odd-sized payloads.
type Chunk struct {
	ID     string
	Size   uint32
	Offset int
}

// End returns the offset one past the chunk, pad byte included.
func (c Chunk) End() int {
	return c.Offset + 8 + int(c.Size) + int(c.Size%2)
}

// Scan walks the container from offset 12 and returns every top-level chunk
// in file order. Odd-sized chunks are followed by a pad byte not counted in
// their declared size. Trailing bytes too short to hold a chunk header are
// ignored, since truncated padding is common in WAV files found in the wild.
// Duplicate chunk ids are recorded as-is; callers decide which one wins.
func Scan(buf []byte) ([]Chunk, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a RIFF header", ErrInvalidContainer, len(buf))
	}
	if string(buf[0:4]) != "RIFF" || string(buf[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: bad signature", ErrInvalidContainer)
	}

	var chunks []Chunk
	off := HeaderSize
	for off+8 <= len(buf) {
		size := binary.LittleEndian.Uint32(buf[off+4 : off+8])
		chunks = append(chunks, Chunk{
			ID:     string(buf[off : off+4]),
			Size:   size,
			Offset: off,
		})
		off += 8 + int(size) + int(size%2)
	}
	return chunks, nil
}

// FindChunk returns the first chunk with the given id.
func FindChunk(chunks []Chunk, id string) (Chunk, bool) {
	for _, c := range chunks {
		if c.ID == id {
			return c, true
		}
	}
	return Chunk{}, false
}
