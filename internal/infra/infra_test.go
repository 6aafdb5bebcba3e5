package infra

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocab/internal/config"
)

func TestNewNewRelic_Disabled(t *testing.T) {
	for _, cfg := range []config.NewRelicConfig{
		{Enabled: false, LicenseKey: "x"},
		{Enabled: true, LicenseKey: ""},
	} {
		app, err := NewNewRelic(cfg)
		assert.NoError(t, err)
		assert.Nil(t, app)
	}
}

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedis(ctx, "127.0.0.1:1", nil)
	assert.ErrorContains(t, err, "failed to ping redis")
}

func TestNewDB(t *testing.T) {
	dsn := os.Getenv("GOCAB_TEST_DSN")
	if dsn == "" {
		t.Skip("GOCAB_TEST_DSN not set")
	}
	pool, err := NewDB(context.Background(), dsn)
	require.NoError(t, err)
	pool.Close()
}

func TestConfigureLogger(t *testing.T) {
	l := logrus.New()

	ConfigureLogger(l, "debug", "json")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	ConfigureLogger(l, "loud", "text")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
}
