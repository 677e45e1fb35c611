package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
database:
  host: "db.internal"
jwt:
  secret: "file-secret"
service:
  key: "file-service-key"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	// Defaults survive for fields the file omits
	assert.Equal(t, "720h", cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, "alumniportal", cfg.Database.DBName)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "file-secret"
service:
  key: "file-service-key"
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_HOST", "env-host")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "env-host", cfg.Database.Host)
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORTAL_SERVICE_KEY", "env-service-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "env-service-key", cfg.Service.Key)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, `
service:
  key: "file-service-key"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")

	_, err = LoadConfig(writeConfigFile(t, `
jwt:
  secret: "file-secret"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service key")
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, `
jwt:
  secret: "file-secret"
  access_token_expiration: "yesterday"
service:
  key: "file-service-key"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token expiration")
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "portal"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "alumniportal"

	assert.Equal(t,
		"postgres://portal:pw@db:5432/alumniportal?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
