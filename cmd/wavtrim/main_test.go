package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/wavtrim"
)

// setupInputs writes loud.wav, quiet.wav and broken.wav at 1 kHz and
// isolates the test from user configuration.
func setupInputs(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()

	loud := make([]float32, 2000)
	for i := 1200; i < 1400; i++ {
		loud[i] = float32(0.6 * math.Sin(2*math.Pi*float64(i)/20))
	}

	for name, samples := range map[string][]float32{
		"loud.wav":  loud,
		"quiet.wav": make([]float32, 2000),
	} {
		data, err := wavtrim.Encode(samples, 1000, 1, uint64(len(samples)))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.wav"), []byte("not a wav"), 0o644))

	return dir
}

func TestRunRequiresTwoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"*.wav"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg(s)")
}

func TestRunTrimsMatchingFiles(t *testing.T) {
	in := setupInputs(t)
	out := filepath.Join(t.TempDir(), "trimmed")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--length-ms", "100",
		"--log-format", "json",
		"--summary",
		filepath.Join(in, "*.wav"), out,
	}, &stdout, &stderr)
	require.NoError(t, err, "per-file failures keep a zero exit status")

	data, err := os.ReadFile(filepath.Join(out, "loud.wav"))
	require.NoError(t, err)
	clip, err := wavtrim.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), clip.NumFrames)

	assert.NoFileExists(t, filepath.Join(out, "quiet.wav"))
	assert.NoFileExists(t, filepath.Join(out, "broken.wav"))

	logs := stderr.String()
	assert.Contains(t, logs, `"msg":"saved"`)
	assert.Contains(t, logs, `"msg":"skipped"`)
	assert.Contains(t, logs, `"msg":"failed"`)

	table := stdout.String()
	assert.Contains(t, table, "loud.wav")
	assert.Contains(t, table, "saved 1")
	assert.Contains(t, table, "skipped 1")
	assert.Contains(t, table, "failed 1")
	assert.Contains(t, table, "244 B")
}

func TestRunUsesConfigFile(t *testing.T) {
	in := setupInputs(t)
	out := t.TempDir()

	cfgPath := filepath.Join(t.TempDir(), "wavtrim.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[trim]
length_ms = 50
min_volume = 0

[output]
format = "aiff"
workers = 2

[logging]
format = "json"
`), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-c", cfgPath, filepath.Join(in, "*.wav"), out}, &stdout, &stderr)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "loud.aif"))
	assert.FileExists(t, filepath.Join(out, "quiet.aif"), "min_volume 0 keeps silent files")
	assert.Empty(t, stdout.String())
}

func TestRunFlagOverridesConfig(t *testing.T) {
	in := setupInputs(t)
	out := t.TempDir()

	cfgPath := filepath.Join(t.TempDir(), "wavtrim.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\nformat = \"aiff\"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-c", cfgPath, "--format", "WAV", "--length-ms", "100", "--log-format", "json",
		filepath.Join(in, "loud.wav"), out,
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "loud.wav"))
	assert.NoFileExists(t, filepath.Join(out, "loud.aif"))
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	in := setupInputs(t)

	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{"negative volume", []string{"--min-volume", "-1"}, "trim.min_volume"},
		{"zero length", []string{"--length-ms", "0"}, "trim.length_ms"},
		{"format", []string{"--format", "mp3"}, "output.format"},
		{"missing config", []string{"-c", filepath.Join(in, "none.toml")}, "does not exist"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append(tc.args, filepath.Join(in, "*.wav"), t.TempDir())

			err := run(context.Background(), args, &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestRunNoMatches(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "never")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--log-format", "json", filepath.Join(t.TempDir(), "*.wav"), out}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "no input files matched")
	assert.NoDirExists(t, out)
}

func TestRunKeepsInputNames(t *testing.T) {
	in := setupInputs(t)
	out := t.TempDir()

	loud, err := os.ReadFile(filepath.Join(in, "loud.wav"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(in, "Take1.WAV"), loud, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "clip"), loud, 0o644))

	var stdout, stderr bytes.Buffer
	err = run(context.Background(), []string{
		"--length-ms", "100", "--log-format", "json",
		filepath.Join(in, "[Tc]*"), out,
	}, &stdout, &stderr)
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"Take1.WAV", "clip"}, names)
}

func TestRunDanglingSymlink(t *testing.T) {
	in := setupInputs(t)
	require.NoError(t, os.Rename(filepath.Join(in, "loud.wav"), filepath.Join(in, "a.wav")))
	require.NoError(t, os.Symlink(filepath.Join(in, "gone.wav"), filepath.Join(in, "b.wav")))
	out := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--length-ms", "100", "--log-format", "json",
		filepath.Join(in, "[ab].wav"), out,
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "a.wav"))
	assert.NoFileExists(t, filepath.Join(out, "b.wav"))
	assert.Contains(t, stderr.String(), `"msg":"failed"`)
}

func TestRunBadPattern(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--log-format", "json", filepath.Join(t.TempDir(), "[.wav"), t.TempDir(),
	}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "no input files matched")
}

func TestRunUnwritableOutput(t *testing.T) {
	in := setupInputs(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--length-ms", "100", "--log-format", "json",
		filepath.Join(in, "loud.wav"), filepath.Join(blocker, "out"),
	}, &stdout, &stderr)
	require.NoError(t, err, "write failures are reported per file")

	logs := stderr.String()
	assert.Contains(t, logs, "create output directory")
	assert.Contains(t, logs, `"msg":"failed"`)
}

func TestRunCancelled(t *testing.T) {
	in := setupInputs(t)
	out := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"--log-format", "json", filepath.Join(in, "*.wav"), out}, &stdout, &stderr)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(out, "loud.wav"))
}
