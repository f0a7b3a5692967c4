package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 1, cfg.LogVerbosity)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BSM_ADDR", "127.0.0.1:9090")
	t.Setenv("BSM_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("BSM_LOG_VERBOSITY", "2")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2, cfg.LogVerbosity)
}

func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BSM_ADDR=:7070\nBSM_READ_TIMEOUT=2s\n"), 0644))
	// godotenv sets process env; clear it afterwards
	t.Cleanup(func() {
		os.Unsetenv("BSM_ADDR")
		os.Unsetenv("BSM_READ_TIMEOUT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestEnvWinsOverDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BSM_ADDR=:7070\n"), 0644))
	t.Setenv("BSM_ADDR", ":6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"bad duration":      {"BSM_READ_TIMEOUT", "soon"},
		"zero timeout":      {"BSM_WRITE_TIMEOUT", "0s"},
		"negative verbose":  {"BSM_LOG_VERBOSITY", "-1"},
		"non-int verbosity": {"BSM_LOG_VERBOSITY", "loud"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}
