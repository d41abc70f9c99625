package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Endpoint string `json:"endpoint"`
	Debug    bool   `json:"debug"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "app.json5")
	require.NoError(t, os.WriteFile(name, []byte(`{endpoint: "https://a.example", debug: false}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.local.json5"), []byte(`{debug: true}`), 0600))

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://a.example", cfg.Endpoint)
	require.True(t, cfg.Debug)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.local.json5"), []byte(`{endpoint: "https://b.example"}`), 0600))

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://b.example", cfg.Endpoint)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "app.json5"))
	require.True(t, os.IsNotExist(err))
}
