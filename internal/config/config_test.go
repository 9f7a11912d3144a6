package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "NAROU_CONFIG", "NAROU_BASE_URL", "NAROU_SEARCH_URL", "NAROU_USER_AGENT",
		"NAROU_REQUEST_DELAY", "NAROU_TIMEOUT", "NAROU_LOG_LEVEL", "NAROU_LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, time.Second, cfg.RequestDelay)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "narou.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
base_url: https://example.test/
request_delay: 250ms
timeout: 3s
log_level: debug
`), 0o644))

	t.Setenv("NAROU_TIMEOUT", "5s")
	t.Setenv("PORT", "9100")

	cfg, err := Load(Options{ConfigPath: path, Port: "9200"})
	require.NoError(t, err)

	assert.Equal(t, "9200", cfg.Port)
	assert.Equal(t, "https://example.test/", cfg.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestDelay)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "narou.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\n"), 0o644))
	t.Setenv("NAROU_CONFIG", path)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	t.Setenv("NAROU_REQUEST_DELAY", "soon")
	_, err = Load(Options{})
	assert.ErrorContains(t, err, "NAROU_REQUEST_DELAY")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.RequestDelay = 0
	assert.NoError(t, cfg.Validate(), "zero delay disables throttling")

	cfg.RequestDelay = -time.Second
	cfg.Timeout = 0
	cfg.LogLevel = "verbose"
	cfg.BaseURL = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request_delay")
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "verbose")
	assert.Contains(t, err.Error(), "base_url")
}

func TestYAML(t *testing.T) {
	out, err := DefaultConfig().YAML()
	require.NoError(t, err)

	assert.Contains(t, out, "request_delay: 1s")
	assert.Contains(t, out, "timeout: 15s")
	assert.Contains(t, out, "search_url: https://yomou.syosetu.com/search.php")
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestClientOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.ClientOptions(nil)

	assert.Equal(t, cfg.UserAgent, opts.UserAgent)
	assert.Equal(t, cfg.Timeout, opts.Timeout)
	assert.Equal(t, cfg.RequestDelay, opts.RequestDelay)
}
