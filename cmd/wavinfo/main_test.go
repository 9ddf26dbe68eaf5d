package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/wavtrim"
)

// insertChunk places an extra chunk between the fmt and data chunks of a
// canonical 44-byte-header WAV image.
func insertChunk(t *testing.T, wav []byte, id string, payload []byte) []byte {
	t.Helper()
	require.GreaterOrEqual(t, len(wav), 44)

	var out bytes.Buffer
	out.Write(wav[:36])
	out.WriteString(id)
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint32(len(payload))))
	out.Write(payload)
	out.Write(wav[36:])

	b := out.Bytes()
	binary.LittleEndian.PutUint32(b[4:8], uint32(len(b)-8))

	return b
}

func writeStereo(t *testing.T, dir string) string {
	t.Helper()

	// 8 frames at 1 kHz, loudest pair at frames 5 and 6.
	samples := make([]float32, 16)
	samples[10], samples[11] = 0.5, 0.25
	samples[12], samples[13] = -0.5, -0.25

	data, err := wavtrim.Encode(samples, 1000, 2, 8)
	require.NoError(t, err)

	data = insertChunk(t, data, "LIST", []byte("INFOINAM\x06\x00\x00\x00probe\x00"))

	path := filepath.Join(dir, "stereo.wav")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestRunDescribesFile(t *testing.T) {
	path := writeStereo(t, t.TempDir())

	var out, errOut bytes.Buffer
	err := run([]string{"--length-ms", "2", path}, &out, &errOut)
	require.NoError(t, err)

	got := out.String()
	for _, want := range []string{
		path,
		"Format: 1000 Hz, 2 ch, 16-bit PCM (fmt chunk 16 bytes)",
		"Frames: 8 (8ms)",
		`Skipped chunks: "LIST"`,
		"Info title: probe",
		"Loudest window: start 5, 2 frames, avg volume 0.3750",
	} {
		assert.Contains(t, got, want)
	}
	assert.Empty(t, errOut.String())
}

func TestRunDefaultLengthCoversShortFiles(t *testing.T) {
	path := writeStereo(t, t.TempDir())

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{path}, &out, &errOut))

	// 1000 ms is longer than the file: the whole clip is the window.
	assert.Contains(t, out.String(), "Loudest window: start 0, 8 frames")
}

func TestRunReportsFailuresPerFile(t *testing.T) {
	dir := t.TempDir()
	good := writeStereo(t, dir)
	bad := filepath.Join(dir, "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("RIFF\x04\x00\x00\x00AIFF"), 0o644))

	var out, errOut bytes.Buffer
	err := run([]string{bad, good, filepath.Join(dir, "missing.wav")}, &out, &errOut)
	require.ErrorIs(t, err, errDecodeFailed)

	assert.Contains(t, out.String(), good, "later files are still described")
	assert.Contains(t, errOut.String(), "bad.wav: invalid argument")
	assert.Contains(t, errOut.String(), "missing.wav")
}

func TestRunArgumentErrors(t *testing.T) {
	var out, errOut bytes.Buffer

	require.Error(t, run(nil, &out, &errOut))

	err := run([]string{"--length-ms", "0", "x.wav"}, &out, &errOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}
