package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points the .env lookup at an empty dir and clears FINDASH_*.
func isolateEnv(t *testing.T) {
	t.Helper()
	orig := dotenvFile
	dotenvFile = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() { dotenvFile = orig })

	for _, k := range []string{
		"FINDASH_API_URL", "FINDASH_AI_SERVICE_URL", "FINDASH_STORAGE_PATH",
		"FINDASH_REQUEST_TIMEOUT", "FINDASH_LOG_LEVEL", "FINDASH_LOG_FORMAT",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		APIBaseURL:   "http://localhost:8080/api",
		AIServiceURL: "http://localhost:8000",
		StoragePath:  "findash.db",
		LogLevel:     "info",
		LogFormat:    "text",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_NoSources_IsDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	isolateEnv(t)

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":    "http://json:1/api",
		"ai_service_url":  "http://json-ai:2",
		"storage_path":    "json.db",
		"request_timeout": "5s",
		"log_level":       "warn",
	})
	t.Setenv("FINDASH_AI_SERVICE_URL", "http://env-ai:3")
	t.Setenv("FINDASH_LOG_FORMAT", "json")
	t.Setenv("FINDASH_STORAGE_PATH", "env.db")

	cfg, err := LoadConfig([]string{"-c", path, "-s", "flag.db", "-l", "debug"})
	require.NoError(t, err)

	want := &Config{
		APIBaseURL:     "http://json:1/api",
		AIServiceURL:   "http://env-ai:3",
		StoragePath:    "flag.db",
		RequestTimeout: 5 * time.Second,
		LogLevel:       "debug",
		LogFormat:      "json",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	isolateEnv(t)

	_, err := LoadConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	require.ErrorContains(t, err, "json config")

	_, err = LoadConfig([]string{"-t", "soon"})
	require.ErrorContains(t, err, "flags")

	t.Setenv("FINDASH_REQUEST_TIMEOUT", "forever")
	_, err = LoadConfig(nil)
	require.ErrorContains(t, err, "env config")
}
