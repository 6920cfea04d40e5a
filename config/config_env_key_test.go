package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const testConfigYAML = `
env:
  env: test
  serviceName: farmlease
http:
  port: 8080
secretKey:
  access: a
  refresh: r
auth:
  bcryptCost: 10
  accessTokenTTL: 15m
qrcode:
  baseUrl: http://localhost:8080
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "farm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv(configFileEnv, path)

	return path
}

func TestNew_EnvOverridesYAMLAndDefaults(t *testing.T) {
	writeConfig(t, testConfigYAML)
	t.Setenv("AUTH_BCRYPTCOST", "4")
	t.Setenv("QRCODE_BASEURL", "https://farm.example.np")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "farmlease", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, defaultPasswordMinLength, cfg.Auth.PasswordMinLength)

	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, "https://farm.example.np", cfg.QRCode.BaseURL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultQRCodeLevel, cfg.QRCode.ErrorCorrectionLevel)
	assert.Nil(t, cfg.Admin)
	assert.Nil(t, cfg.PubSub)
}

func TestNew_RejectsInvalidFarmSettings(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  string
	}{
		{
			name:  "admin email without password",
			extra: "admin:\n  email: root@farm.np\n",
			want:  "Config.Admin.Password fails required_with",
		},
		{
			name:  "unknown pubsub provider",
			extra: "pubsub:\n  provider: kafka\n",
			want:  "Config.PubSub.Provider fails oneof",
		},
		{
			name:  "google provider without project",
			extra: "pubsub:\n  provider: google\n",
			want:  "Config.PubSub.ProjectID fails required_if",
		},
		{
			name:  "metrics path without slash",
			extra: "metrics:\n  path: metrics\n",
			want:  "Config.Metrics.Path fails startswith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, testConfigYAML+tt.extra)

			_, err := New()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_RejectsSharedSecrets(t *testing.T) {
	writeConfig(t, testConfigYAML)
	t.Setenv("SECRETKEY_REFRESH", "a")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.SecretKey.Refresh fails nefield")
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(testConfigYAML), 0o600))

	path, err := locate("", []string{filepath.Join(dir, "missing"), dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, configFileName), path)

	_, err = locate("", []string{filepath.Join(dir, "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")

	_, err = locate(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
}
