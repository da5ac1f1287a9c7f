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

	"github.com/google/uuid"
	"github.com/wavrig/wavrig/internal/riff"
)

// ReadComment returns the ICMT comment stored in the WAV file at path. A
// file without an INFO chunk has an empty comment; that is not an error.
func ReadComment(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	chunks, err := riff.Scan(buf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	comment, _ := riff.ExtractComment(buf, chunks)
	return comment, nil
}

// WriteComment rewrites the WAV file at path so that comment is stored in a
// LIST/INFO chunk placed after the data chunk. The new content is fully
// assembled in memory and persisted with a temp-file rename, so a failure
// at any point leaves the original file intact.
func WriteComment(path, comment string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	out, err := riff.WriteComment(buf, comment)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return writeFileAtomic(path, out, perm)
}

// writeFileAtomic writes data to a uniquely named sibling of path and
// renames it over the original. A reader racing the write sees either the
// old or the new file, never a torn one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
