package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superior-limousine/website/internal/config"
)

func TestNew(t *testing.T) {
	cfg, err := config.ReadConfig("../../etc/")
	require.NoError(t, err)

	cfg.Log.Console.Enabled = false
	cfg.Webserver.Port = 9999

	d, err := New(&cfg)
	require.NoError(t, err)

	assert.Equal(t, ":9999", d.Addr())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilConfig)
}

func TestNew_InvalidLogConfig(t *testing.T) {
	cfg, err := config.ReadConfig("../../etc/")
	require.NoError(t, err)

	cfg.Log.AppName = ""

	_, err = New(&cfg)
	require.Error(t, err)
}
