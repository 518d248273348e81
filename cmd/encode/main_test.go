package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	bt "github.com/dargueta/bootpack/testing"
	"github.com/dargueta/bootpack/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRun__Success(t *testing.T) {
	inputPath := writeTempFile(t, "logo.bin", bt.LogoTiles)
	outputPath := filepath.Join(t.TempDir(), "logo.pb12")

	var stderr bytes.Buffer
	status := run([]string{"encode", inputPath, outputPath}, &stderr)
	require.Equal(t, 0, status, "stderr: %s", stderr.String())
	assert.Empty(t, stderr.String())

	encoded, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, compression.EncodePB12ToBytes(bt.LogoTiles), encoded)
}

func TestRun__EmptyInput(t *testing.T) {
	inputPath := writeTempFile(t, "empty.bin", []byte{})
	outputPath := filepath.Join(t.TempDir(), "empty.pb12")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"encode", inputPath, outputPath}, &stderr))

	encoded, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, encoded)
}

func TestRun__MissingArguments(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"encode", "only-one"}, &stderr))
	assert.Contains(t, stderr.String(), "Usage: encode input-file output-file")
}

func TestRun__MissingInput(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out.pb12")

	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"encode", filepath.Join(dir, "nope.bin"), outputPath}, &stderr))
	assert.Contains(t, stderr.String(), "Failed to open file for reading")
	assert.NoFileExists(t, outputPath, "output created although input couldn't be opened")
}

func TestRun__UnwritableOutput(t *testing.T) {
	inputPath := writeTempFile(t, "logo.bin", bt.LogoTiles)
	outputPath := filepath.Join(t.TempDir(), "missing-dir", "out.pb12")

	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"encode", inputPath, outputPath}, &stderr))
	assert.Contains(t, stderr.String(), "Failed to open file for writing")
}

func TestRun__InputTooLarge(t *testing.T) {
	inputPath := writeTempFile(
		t, "big.bin", bytes.Repeat([]byte{0x42}, compression.MaxSourceSize+1))
	outputPath := filepath.Join(t.TempDir(), "big.pb12")

	var stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"encode", inputPath, outputPath}, &stderr))
	assert.Contains(t, stderr.String(), "Source image too large")
}
