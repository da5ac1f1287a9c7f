package library_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wavrig/wavrig/internal/library"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
}

func TestLocateSearchOrder(t *testing.T) {
	project, wavs, recs := t.TempDir(), t.TempDir(), t.TempDir()
	lib := library.New(project, wavs, recs, nil)

	touch(t, wavs, "kick.wav")
	touch(t, recs, "kick.wav", "take1.wav")

	// Project wins over wavs, wavs over recordings.
	require.Equal(t, library.LocationWavs, lib.Locate("kick.wav"))
	touch(t, project, "kick.wav")
	require.Equal(t, library.LocationProject, lib.Locate("kick.wav"))

	require.Equal(t, library.LocationRecs, lib.Locate("take1.wav"))
	require.Equal(t, library.LocationNotFound, lib.Locate("ghost.wav"))
}

func TestLocateSkipsUnconfiguredRoots(t *testing.T) {
	recs := t.TempDir()
	touch(t, recs, "take2.wav")

	lib := library.New("", "", recs, nil)
	require.Equal(t, library.LocationRecs, lib.Locate("take2.wav"))
	require.Equal(t, library.LocationNotFound, lib.Locate("kick.wav"))
}

func TestLocationString(t *testing.T) {
	require.Equal(t, "project", library.LocationProject.String())
	require.Equal(t, "not found", library.LocationNotFound.String())
}
