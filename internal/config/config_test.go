package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 11, cfg.FrameSize)
	assert.True(t, cfg.DetectQuotes)
	assert.Equal(t, "cmyk", cfg.Scheme)
	assert.Empty(t, cfg.IgnorePhrases)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), File)
	body := `
frameSize: 5
detectQuotes: false
scheme: rbg
ignorePhrases:
  - all rights reserved
  - lorem ipsum
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.FrameSize)
	assert.False(t, cfg.DetectQuotes)
	assert.Equal(t, "rbg", cfg.Scheme)
	assert.Equal(t, []string{"all rights reserved", "lorem ipsum"}, cfg.IgnorePhrases)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte("frameSize: 7\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.FrameSize)
	assert.True(t, cfg.DetectQuotes)
	assert.Equal(t, "cmyk", cfg.Scheme)
}

func TestLoad_InvalidFrameSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte("frameSize: 0\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte("scheme: neon\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte("frameSize: [oops\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.FrameSize = -3
	assert.Error(t, cfg.Validate())
}
