package vastapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
library: /opt/vastai/lib/vastai_drv_video.so
variant: nodev
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "/opt/vastai/lib/vastai_drv_video.so", cfg.Library)

	v, err := cfg.TableVariant()
	require.NoError(t, err)
	assert.Equal(t, VariantNoDevice, v)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, "/opt/vastai/lib/vastai_drv_video.so", p.LibraryName)
	assert.NotNil(t, p.LoggerFactory)
	assert.NotNil(t, p.Opener)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, LibraryName, p.LibraryName)
	assert.Nil(t, p.LoggerFactory)

	v, err := cfg.TableVariant()
	require.NoError(t, err)
	assert.Equal(t, VariantDevice, v)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("libary: typo.so\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("variant: gpu\n"))
	assert.Error(t, err)

	cfg, err := ParseConfig([]byte("log_level: loud\n"))
	require.NoError(t, err)
	_, err = cfg.Params()
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vastapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library: custom.so\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.so", cfg.Library)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
