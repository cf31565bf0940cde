package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", conf.HTTP.HostString)
	assert.Equal(t, "", conf.Database.DSN)
	assert.Equal(t, "", conf.Catalog.HostString)
	assert.Equal(t, "error", conf.App.LogLevel)
	assert.Equal(t, AppModeDevelop, conf.App.Mode)
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://studio@localhost/studio")
	t.Setenv("RUN_ADDRESS", ":9000")
	t.Setenv("CATALOG_ADDRESS", "catalog:8081")
	t.Setenv("LOG_LEVEL", "debug")

	conf, err := parse(flag.NewFlagSet("test", flag.ContinueOnError),
		[]string{"-a", ":7000", "-d", "ignored", "-m", AppModeProduction})
	require.NoError(t, err)

	assert.Equal(t, ":9000", conf.HTTP.HostString)
	assert.Equal(t, "postgres://studio@localhost/studio", conf.Database.DSN)
	assert.Equal(t, "catalog:8081", conf.Catalog.HostString)
	assert.Equal(t, "debug", conf.App.LogLevel)
	assert.Equal(t, AppModeProduction, conf.App.Mode)
}

func TestParse_BadFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	_, err := parse(fs, []string{"-unknown"})
	assert.Error(t, err)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
