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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wavrig/wavrig/internal/disk"
	"github.com/wavrig/wavrig/internal/naming"
)

// Converter turns an arbitrary audio file into one matching the hardware
// spec. It is opaque to the import pipeline; the host application plugs in
// its transcoder here, while the stock CLI uses CopyConverter.
type Converter interface {
	Convert(ctx context.Context, src, dst string) error
}

// CopyConverter copies the source file unchanged. Useful when sources are
// already hardware-compatible WAV files.
type CopyConverter struct{}

func (CopyConverter) Convert(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

type ImportOptions struct {
	// ApplyNumbering prefixes imported names following the destination
	// directory's detected numbering scheme.
	ApplyNumbering bool
}

type ImportResult struct {
	Source string
	Name   string
	Size   int64
}

// Import runs the import pipeline for each source in order: sanitize the
// base name, optionally apply the destination's numbering scheme, resolve
// conflicts, then hand the pair to the converter. Sources are processed
// sequentially; ConflictResolver probes are only accurate when writes to
// destDir are serialized.
//
// A free-space preflight rejects the batch up front when the destination
// cannot hold the combined source sizes. The check is best-effort: an
// unknown free space does not block the import.
func (l *Library) Import(ctx context.Context, conv Converter, destDir string, sources []string, opts ImportOptions) ([]ImportResult, error) {
	var needed uint64
	for _, src := range sources {
		info, err := os.Stat(src)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", src, err)
		}
		needed += uint64(info.Size())
	}

	if free, err := disk.FreeSpace(destDir); err == nil && free < needed {
		return nil, fmt.Errorf("not enough space in %s: %d bytes needed, %d available", destDir, needed, free)
	}

	var scheme naming.Scheme
	nextNumber := 0
	if opts.ApplyNumbering {
		names, err := listWavNames(destDir)
		if err != nil {
			return nil, err
		}
		scheme, nextNumber = naming.DetectScheme(names)
	}

	log := l.log.WithField("session", uuid.NewString())

	results := make([]ImportResult, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := naming.Sanitize(filepath.Base(src))
		if opts.ApplyNumbering {
			// A source that already carries a prefix keeps it and does not
			// consume a number from the sequence.
			if numbered := naming.ApplyPrefix(name, nextNumber, scheme); numbered != name {
				name = numbered
				nextNumber++
			}
		}
		name = naming.Resolve(destDir, name)

		dst := filepath.Join(destDir, name)
		if err := conv.Convert(ctx, src, dst); err != nil {
			return results, fmt.Errorf("convert %s: %w", src, err)
		}

		size := int64(0)
		if info, err := os.Stat(dst); err == nil {
			size = info.Size()
		}

		log.WithFields(logrus.Fields{
			"source": src,
			"name":   name,
			"size":   size,
		}).Info("imported sample")

		results = append(results, ImportResult{Source: src, Name: name, Size: size})
	}
	return results, nil
}

// listWavNames returns the .wav file names in dir, in directory order
// (sorted by name, as os.ReadDir guarantees).
func listWavNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
