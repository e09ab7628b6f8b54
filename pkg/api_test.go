package pkg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/sharecart/pkg/config"
)

func TestOpenWithConfig(t *testing.T) {
	root := filepath.Join(t.TempDir(), "arcade", "game", "game.bin")
	cfg := config.Config{
		DataRoot:    root,
		LogLevel:    "error",
		FileMode:    "0644",
		DirMode:     "0755",
		LockTimeout: time.Second,
	}

	store, logger, err := OpenWithConfig(cfg, "api-test")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, filepath.Join(filepath.Dir(filepath.Dir(root)), "dat", "o_o.ini"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestOpenFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "o_o.ini")
	t.Setenv("SHARECART_PATH", path)
	t.Setenv("SHARECART_LOG_LEVEL", "error")

	store, _, err := Open("api-test")
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
}

func TestVerifyCartWithLogger(t *testing.T) {
	store, _, err := OpenWithConfig(config.Config{
		Path:     filepath.Join(t.TempDir(), "o_o.ini"),
		LogLevel: "error",
	}, "verify-test")
	require.NoError(t, err)

	var out bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "verify", Level: hclog.Info, Output: &out})
	require.NoError(t, VerifyCartWithLogger(store, logger))
	assert.Contains(t, out.String(), "Cart verification passed")

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	corrupted := bytes.Replace(content, []byte("Misc3"), []byte("Misc33"), 1)
	require.NoError(t, os.WriteFile(store.Path(), corrupted, 0o644))

	err = VerifyCartWithLogger(store, logger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIntegrity))
	assert.Contains(t, err.Error(), "Misc3")
}
