package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Endpoint string `json:"endpoint"`
	Limit    int    `json:"limit"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "client.json5"), []byte(`{
		// base config
		endpoint: "https://itunes.apple.com",
		limit: 50,
	}`), 0600)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "client.local.json5"), []byte(`{
		limit: 10,
	}`), 0600)
	require.NoError(t, err)

	c, err := ReadConfig[testConfig](filepath.Join(dir, "client.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://itunes.apple.com", c.Endpoint)
	require.Equal(t, 10, c.Limit)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "nope.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "client.local.json5"), []byte(`{limit: 3}`), 0600)
	require.NoError(t, err)

	c, err := ReadConfig[testConfig](filepath.Join(dir, "client.json5"))
	require.NoError(t, err)
	require.Equal(t, 3, c.Limit)
}
