package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, logrus.DebugLevel, New(&buf, true).GetLevel())
}

func TestNewFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "colorcube.log")

	log, closer, err := NewFile(path, false)
	require.NoError(t, err)
	log.WithField("run", "abc").Info("first")
	require.NoError(t, closer.Close())

	log, closer, err = NewFile(path, false)
	require.NoError(t, err)
	log.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run=abc")
	assert.Contains(t, string(data), "second")
}
