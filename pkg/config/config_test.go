package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/embedding-service/pkg/embedding"
	"github.com/Aleph-Alpha/embedding-service/pkg/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, model.DefaultServicePath, cfg.Embedding.ModelPath)
	assert.Equal(t, embedding.ProviderTEI, cfg.Embedding.Provider)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, ServiceName, cfg.Logger.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLThenEnvironment(t *testing.T) {
	file := writeFile(t, "config.yaml", `
server:
  address: ":9000"
embedding:
  provider: openai
  endpoint: http://vllm:8000/v1
cache:
  enabled: true
  ttl: 1h
`)
	t.Setenv("SERVER_ADDRESS", ":9100")

	cfg, err := Load(Options{File: file})
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.Address)
	assert.Equal(t, embedding.ProviderOpenAI, cfg.Embedding.Provider)
	assert.Equal(t, "http://vllm:8000/v1", cfg.Embedding.Endpoint)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	// untouched sections keep their defaults
	assert.Equal(t, model.DefaultServicePath, cfg.Embedding.ModelPath)
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "EMBEDDING_MODEL_PATH=/models/minilm\nCACHE_ENABLED=true\n")
	t.Setenv("CACHE_ENABLED", "false")
	// godotenv sets variables in the process; unset them after the test.
	t.Cleanup(func() { _ = os.Unsetenv("EMBEDDING_MODEL_PATH") })

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "/models/minilm", cfg.Embedding.ModelPath)
	// the real environment wins over the dotenv file
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	_, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), ".env")})
	assert.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(Options{File: writeFile(t, "bad.yaml", "server: [")})
	assert.Error(t, err)

	t.Setenv("REDIS_PORT", "not-a-number")
	_, err = Load(Options{})
	assert.Error(t, err)
}

func TestLoad_InstallerSharesMinio(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("INSTALL_DIR", "/tmp/minilm")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "minio:9000", cfg.Installer.Minio.Endpoint)
	assert.Equal(t, "/tmp/minilm", cfg.Installer.Dir)
	assert.Equal(t, model.DefaultName, cfg.Installer.Model)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Embedding.Provider = "word2vec"
	assert.ErrorIs(t, cfg.Validate(), embedding.ErrUnknownProvider)
}
