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
	"fmt"
)

// WriteComment returns a new buffer holding the same container with comment
// stored in a LIST/INFO/ICMT chunk positioned immediately after 'data'.
//
// The target hardware parses chunks in strict file order and halts on a
// metadata chunk that precedes the audio payload, so any existing LIST/INFO
// chunk is excised first and a fresh one is always inserted after 'data',
// even when the original was already in the right place. The RIFF size field
// is rewritten on every call. The input buffer is never modified.
func WriteComment(buf []byte, comment string) ([]byte, error) {
	chunks, err := Scan(buf)
	if err != nil {
		return nil, err
	}

	if info, ok := FindInfoChunk(buf, chunks); ok {
		end := info.End()
		if end > len(buf) {
			end = len(buf)
		}
		stripped := make([]byte, 0, len(buf)-(end-info.Offset))
		stripped = append(stripped, buf[:info.Offset]...)
		stripped = append(stripped, buf[end:]...)
		buf = stripped

		// Chunk offsets past the excised region have shifted.
		if chunks, err = Scan(buf); err != nil {
			return nil, err
		}
	}

	data, ok := FindChunk(chunks, "data")
	if !ok {
		return nil, fmt.Errorf("%w: cannot position INFO chunk", ErrNoDataChunk)
	}

	insertAt := data.End()
	if insertAt > len(buf) {
		insertAt = len(buf)
	}

	info := BuildInfoChunk(comment)

	out := make([]byte, 0, len(buf)+len(info))
	out = append(out, buf[:insertAt]...)
	out = append(out, info...)
	out = append(out, buf[insertAt:]...)

	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	return out, nil
}
