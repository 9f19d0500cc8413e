package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Levels(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	require.NoError(t, Setup(Options{Level: "warn"}))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	require.NoError(t, Setup(Options{Level: "warn", Debug: true}))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, Setup(Options{Level: "loud"}))
}

func TestSetup_File(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	path := filepath.Join(t.TempDir(), "scanreport.log")
	require.NoError(t, Setup(Options{JSON: true, FilePath: path}))

	For("test").Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
