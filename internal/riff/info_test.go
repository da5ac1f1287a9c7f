package riff_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wavrig/wavrig/internal/riff"
)

func TestBuildInfoChunkOddLength(t *testing.T) {
	buf := riff.BuildInfoChunk("Hi!")

	require.Equal(t, "LIST", string(buf[0:4]))
	require.Equal(t, uint32(4+8+4), binary.LittleEndian.Uint32(buf[4:8]))
	require.Equal(t, "INFO", string(buf[8:12]))
	require.Equal(t, "ICMT", string(buf[12:16]))

	// Declared length is the unpadded byte count, the pad byte is physical only.
	require.Equal(t, uint32(3), binary.LittleEndian.Uint32(buf[16:20]))
	require.Equal(t, []byte("Hi!\x00"), buf[20:])
	require.Zero(t, len(buf)%2)
}

func TestBuildInfoChunkEvenLength(t *testing.T) {
	buf := riff.BuildInfoChunk("Test")

	require.Equal(t, uint32(4+8+4), binary.LittleEndian.Uint32(buf[4:8]))
	require.Equal(t, uint32(4), binary.LittleEndian.Uint32(buf[16:20]))
	require.Equal(t, []byte("Test"), buf[20:])
}

func TestBuildInfoChunkEmptyComment(t *testing.T) {
	buf := riff.BuildInfoChunk("")

	require.Equal(t, uint32(4+8), binary.LittleEndian.Uint32(buf[4:8]))
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[16:20]))
	require.Equal(t, 20, len(buf))
}

func TestExtractComment(t *testing.T) {
	buf := wave(fmtChunk(), chunk("data", make([]byte, 8)))
	out, err := riff.WriteComment(buf, "kick drum, tuned down")
	require.NoError(t, err)

	chunks, err := riff.Scan(out)
	require.NoError(t, err)

	comment, ok := riff.ExtractComment(out, chunks)
	require.True(t, ok)
	require.Equal(t, "kick drum, tuned down", comment)
}

func TestExtractCommentAbsent(t *testing.T) {
	buf := wave(fmtChunk(), chunk("data", make([]byte, 8)))

	chunks, err := riff.Scan(buf)
	require.NoError(t, err)

	comment, ok := riff.ExtractComment(buf, chunks)
	require.False(t, ok)
	require.Empty(t, comment)
}

func TestExtractCommentSkipsForeignSubChunks(t *testing.T) {
	// An INFO list written by another tool may carry IART/INAM before ICMT.
	payload := []byte("INFO")
	payload = append(payload, chunk("IART", []byte("someone"))...)
	payload = append(payload, chunk("ICMT", []byte("found it"))...)

	buf := wave(fmtChunk(), chunk("data", make([]byte, 8)), chunk("LIST", payload))

	chunks, err := riff.Scan(buf)
	require.NoError(t, err)

	comment, ok := riff.ExtractComment(buf, chunks)
	require.True(t, ok)
	require.Equal(t, "found it", comment)
}

func TestExtractCommentUTF8(t *testing.T) {
	buf := wave(fmtChunk(), chunk("data", make([]byte, 8)))
	out, err := riff.WriteComment(buf, "böng, tüned 440Hz")
	require.NoError(t, err)

	chunks, err := riff.Scan(out)
	require.NoError(t, err)

	comment, ok := riff.ExtractComment(out, chunks)
	require.True(t, ok)
	require.Equal(t, "böng, tüned 440Hz", comment)
}
