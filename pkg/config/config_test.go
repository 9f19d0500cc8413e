package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/scanreport/pkg/report"
)

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, report.LanguageEnglish, cfg.ReportLanguage())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Language = "pl_PL"
	cfg.Concurrency = 3
	cfg.OutputFormat = "json"
	cfg.SetAPIKey("gemini", "secret")

	require.NoError(t, SaveTo(path, cfg))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, report.LanguagePolish, loaded.ReportLanguage())
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: pl\nconcurrency: 2\n"), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, "html", cfg.OutputFormat)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, report.LanguagePolish, cfg.ReportLanguage())
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]string{
		"language":    "language: klingon\n",
		"format":      "output_format: pdf\n",
		"concurrency": "concurrency: -1\n",
		"yaml":        "language: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestGetConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestGetAPIKey_EnvFallback(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "from-env")
	cfg := Default()
	assert.Equal(t, "from-env", cfg.GetAPIKey("gemini"))
	assert.Equal(t, "", cfg.GetAPIKey("unknown"))

	cfg.SetAPIKey("gemini", "stored")
	assert.Equal(t, "stored", cfg.GetAPIKey("gemini"))
}
