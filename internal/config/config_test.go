package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 9, c.FieldSize)
	assert.Equal(t, -1, c.Mines)
	assert.Equal(t, DriverSQLite, c.Journal.Driver)
}

func TestLoadFileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
field_size: 12
mines: 20
color: false
log:
  level: warn
journal:
  driver: none
`), 0o600)
	require.NoError(t, err)

	t.Setenv("MINES_COUNT", "30")
	t.Setenv("MINES_LOG_PATH", "/tmp/mines.log")

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 12, c.FieldSize)
	assert.Equal(t, 30, c.Mines)
	assert.False(t, c.Color)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "/tmp/mines.log", c.Log.Path)
	assert.Equal(t, 10, c.Log.MaxSize)
	assert.Equal(t, DriverNone, c.Journal.Driver)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadEnvironment(t *testing.T) {
	t.Setenv("MINES_FIELD_SIZE", "big")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	c := Default()
	c.FieldSize = 3
	c.Mines = 9
	c.Log.Level = "loud"
	c.Journal.Driver = "postgres"

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "loud")
	assert.Contains(t, err.Error(), "database url")
}

func TestLogLevel(t *testing.T) {
	c := Default()
	c.Log.Level = "warn"
	assert.Equal(t, logrus.WarnLevel, c.LogLevel())

	c.Development = true
	assert.Equal(t, logrus.DebugLevel, c.LogLevel())
}

func TestNewLoggerWritesToFile(t *testing.T) {
	c := Default()
	c.Log.Path = filepath.Join(t.TempDir(), "mines.log")

	log, err := NewLogger(c)
	require.NoError(t, err)
	log.WithField("answer", 42).Info("hello")

	b, err := os.ReadFile(c.Log.Path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello")
	assert.Contains(t, string(b), "answer=42")
}
