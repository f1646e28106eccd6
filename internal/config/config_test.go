package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults_DataDirNotEmpty(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "labbench", filepath.Base(cfg.DataDir))
}

func TestLoadConfig_FlagOverridesDefault(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"app", "-d", "/tmp/labbench-test"}

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/labbench-test", cfg.DataDir)
}

func TestLoadConfig_JsonThenFlagPrecedence(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"data_dir":"/from/json"}`), 0o600))

	os.Args = []string{"app", "-c", file}
	cfg := LoadConfig()
	assert.Equal(t, "/from/json", cfg.DataDir)

	// flags win over the file
	os.Args = []string{"app", "-c", file, "-d", "/from/flag"}
	cfg = LoadConfig()
	assert.Equal(t, "/from/flag", cfg.DataDir)
}
