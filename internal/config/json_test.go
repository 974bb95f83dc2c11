package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempJSON writes content to a temporary file and returns its path.
func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "account-service",
			"token_duration": "1h"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost:5432/blog"}
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "account-service", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost:5432/blog", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", input: `"45s"`, want: 45 * time.Second},
		{name: "nanosecond number", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"forever"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
