package preset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wavrig/wavrig/internal/preset"
)

// blob builds a preset-like byte sequence from tokens, each terminated by a
// null byte, padded with zeroes up to the fixed preset size.
func blob(tokens ...string) []byte {
	var b []byte
	for _, tok := range tokens {
		b = append(b, tok...)
		b = append(b, 0)
	}
	return append(b, make([]byte, preset.BlobSize-len(b))...)
}

func TestExtractSamples(t *testing.T) {
	samples := preset.ExtractSamples(blob("kick.wav", "snare.wav", "hat.wav"))
	require.Equal(t, []string{"kick.wav", "snare.wav", "hat.wav"}, samples)
}

func TestExtractSamplesStripsPathPrefix(t *testing.T) {
	samples := preset.ExtractSamples(blob("/samples/drums/kick.wav", "loops/break.wav"))
	require.Equal(t, []string{"kick.wav", "break.wav"}, samples)
}

func TestExtractSamplesIsCaseInsensitive(t *testing.T) {
	samples := preset.ExtractSamples(blob("LOUD.WAV", "quiet.Wav"))
	require.Equal(t, []string{"LOUD.WAV", "quiet.Wav"}, samples)
}

func TestExtractSamplesIgnoresNonWavTokens(t *testing.T) {
	samples := preset.ExtractSamples(blob("patch-name", "kick.wav", "settings.bin", "snare.wav"))
	require.Equal(t, []string{"kick.wav", "snare.wav"}, samples)
}

func TestExtractSamplesCapsAtMaxSlots(t *testing.T) {
	tokens := make([]string, 12)
	for i := range tokens {
		tokens[i] = strings.Repeat("x", i+1) + ".wav"
	}

	samples := preset.ExtractSamples(blob(tokens...))
	require.Len(t, samples, preset.MaxSlots)
	require.Equal(t, tokens[:preset.MaxSlots], samples)
}

func TestExtractSamplesEmptyBlob(t *testing.T) {
	require.Empty(t, preset.ExtractSamples(nil))
	require.Empty(t, preset.ExtractSamples(make([]byte, preset.BlobSize)))
}

func TestExtractSamplesStrayByteAfterMatch(t *testing.T) {
	// A single unprintable byte between a valid name and its terminator
	// must not discard the match.
	b := []byte("kick.wav")
	b = append(b, 0x01, 0)
	b = append(b, "snare.wav"...)
	b = append(b, 0)

	samples := preset.ExtractSamples(b)
	require.Equal(t, []string{"kick.wav", "snare.wav"}, samples)
}

func TestExtractSamplesGarbageResetsPartialToken(t *testing.T) {
	b := []byte("kick")
	b = append(b, 0xFF)
	b = append(b, ".wav"...)
	b = append(b, 0)

	// The 0xFF byte splits the run; ".wav" alone is a valid token name.
	samples := preset.ExtractSamples(b)
	require.Equal(t, []string{".wav"}, samples)
}

func TestExtractSamplesUnterminatedTokenIsDropped(t *testing.T) {
	samples := preset.ExtractSamples([]byte("tail.wav"))
	require.Empty(t, samples)
}

func TestReadSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drums.mgp")
	require.NoError(t, os.WriteFile(path, blob("kick.wav", "clap.wav"), 0o644))

	samples, err := preset.ReadSamples(path)
	require.NoError(t, err)
	require.Equal(t, []string{"kick.wav", "clap.wav"}, samples)
}

func TestReadSamplesMissingFile(t *testing.T) {
	_, err := preset.ReadSamples(filepath.Join(t.TempDir(), "nope.mgp"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
