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
	"strings"
)

const (
	listChunkID  = "LIST"
	listTypeInfo = "INFO"
	commentTagID = "ICMT"
)

// BuildInfoChunk encodes comment into a complete LIST/INFO chunk holding a
// single ICMT sub-chunk. The declared ICMT length is the unpadded UTF-8 byte
// length; a zero pad byte is appended when that length is odd, following the
// same convention top-level chunks use.
func BuildInfoChunk(comment string) []byte {
	raw := []byte(comment)
	padded := len(raw) + len(raw)%2

	// "INFO" + ICMT header + padded comment bytes.
	payload := 4 + 8 + padded

	out := make([]byte, 8+payload)
	copy(out[0:4], listChunkID)
	binary.LittleEndian.PutUint32(out[4:8], uint32(payload))
	copy(out[8:12], listTypeInfo)
	copy(out[12:16], commentTagID)
	binary.LittleEndian.PutUint32(out[16:20], uint32(len(raw)))
	copy(out[20:], raw)
	return out
}

// FindInfoChunk locates the first LIST chunk whose list type is INFO.
// Later duplicates are ignored.
func FindInfoChunk(buf []byte, chunks []Chunk) (Chunk, bool) {
	for _, c := range chunks {
		if c.ID != listChunkID || c.Offset+12 > len(buf) {
			continue
		}
		if string(buf[c.Offset+8:c.Offset+12]) == listTypeInfo {
			return c, true
		}
	}
	return Chunk{}, false
}

// ExtractComment decodes the ICMT sub-chunk of the container's first
// LIST/INFO chunk, with trailing null padding removed. A file without an
// INFO chunk, or an INFO chunk without ICMT, simply has no comment; that
// is reported through the boolean, not as an error.
func ExtractComment(buf []byte, chunks []Chunk) (string, bool) {
	info, ok := FindInfoChunk(buf, chunks)
	if !ok {
		return "", false
	}

	end := info.Offset + 8 + int(info.Size)
	if end > len(buf) {
		end = len(buf)
	}

	// Sub-chunks start right after the 4-byte list type tag.
	off := info.Offset + 12
	for off+8 <= end {
		id := string(buf[off : off+4])
		size := int(binary.LittleEndian.Uint32(buf[off+4 : off+8]))

		if id == commentTagID {
			stop := off + 8 + size
			if stop > end {
				stop = end
			}
			return strings.TrimRight(string(buf[off+8:stop]), "\x00"), true
		}
		off += 8 + size + size%2
	}
	return "", false
}
