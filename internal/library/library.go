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

// Package library is the file-level surface over the chunk engine: reading
// and writing WAV comments on disk, locating samples across the configured
// roots, and the import pipeline.
package library

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Location classifies where a sample name was found.
type Location int

const (
	LocationProject Location = iota
	LocationWavs
	LocationRecs
	LocationNotFound
)

func (l Location) String() string {
	switch l {
	case LocationProject:
		return "project"
	case LocationWavs:
		return "wavs"
	case LocationRecs:
		return "recordings"
	case LocationNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Library holds the three sample roots. Any of them may be empty, in which
// case that root is skipped during lookups.
type Library struct {
	ProjectDir string
	WavsDir    string
	RecsDir    string

	log *logrus.Logger
}

func New(projectDir, wavsDir, recsDir string, log *logrus.Logger) *Library {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Library{
		ProjectDir: projectDir,
		WavsDir:    wavsDir,
		RecsDir:    recsDir,
		log:        log,
	}
}

// Locate probes the roots in fixed order (project, then global wavs, then
// recordings) and reports where name currently lives. The answer is
// recomputed on every call; nothing is cached, so a concurrent move is
// picked up by the next lookup.
func (l *Library) Locate(name string) Location {
	probes := []struct {
		dir string
		loc Location
	}{
		{l.ProjectDir, LocationProject},
		{l.WavsDir, LocationWavs},
		{l.RecsDir, LocationRecs},
	}

	for _, p := range probes {
		if p.dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(p.dir, name)); err == nil {
			return p.loc
		}
	}
	return LocationNotFound
}
