package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Run("should fall back to defaults without a file", func(t *testing.T) {
		req := require.New(t)

		cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

		req.NoError(err)
		req.Equal("release", cfg.Mode)
		req.Equal(8080, cfg.Port)
		req.Equal("badger", cfg.StoreDriver)
		req.Equal(3*time.Second, cfg.StoreTimeout)
		req.Equal(uint(5), cfg.RetryMaxAttempts)
		req.Equal(54*time.Second, cfg.PingPeriod)
	})

	t.Run("should read yaml and let the environment override it", func(t *testing.T) {
		req := require.New(t)
		file := filepath.Join(t.TempDir(), "config.test.yaml")
		req.NoError(os.WriteFile(file, []byte("mode: debug\nport: 9000\nstore_driver: memory\nstore_timeout: 250ms\n"), 0o600))
		t.Setenv("HALLWAY_PORT", "9100")

		cfg, err := LoadFile(file)

		req.NoError(err)
		req.Equal("debug", cfg.Mode)
		req.Equal(9100, cfg.Port)
		req.Equal("memory", cfg.StoreDriver)
		req.Equal(250*time.Millisecond, cfg.StoreTimeout)
	})

	t.Run("should reject zero retry attempts", func(t *testing.T) {
		req := require.New(t)
		file := filepath.Join(t.TempDir(), "config.test.yaml")
		req.NoError(os.WriteFile(file, []byte("retry_max_attempts: 0\n"), 0o600))

		_, err := LoadFile(file)

		req.Error(err)
	})
}
