package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFileMissingPathReturnsAudioError(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "does-not-exist.mp3"))
	require.Error(t, err)
	var audioErr *AudioError
	assert.ErrorAs(t, err, &audioErr)
	assert.Equal(t, "open", audioErr.Operation)
}

func TestDecodeFileUnsupportedExtensionReturnsAudioError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.ogg")
	require.NoError(t, os.WriteFile(path, []byte("not a real codec stream"), 0o644))

	_, err := DecodeFile(path)
	require.Error(t, err)
	var audioErr *AudioError
	assert.ErrorAs(t, err, &audioErr)
	assert.Equal(t, "decode", audioErr.Operation)
	assert.Contains(t, audioErr.Details, "unsupported extension")
}

func TestDecodeFileIsCaseInsensitiveOnExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.OGG")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := DecodeFile(path)
	require.Error(t, err)
	var audioErr *AudioError
	assert.ErrorAs(t, err, &audioErr)
	assert.Contains(t, audioErr.Details, "unsupported extension")
}
