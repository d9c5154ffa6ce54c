package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Endpoint: "localhost:9000", PartSize: 1024}).Validate())
	assert.NoError(t, (&Config{Endpoint: "localhost:9000"}).Validate())
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{Endpoint: "localhost:9000"}
	cfg.applyDefaults()
	assert.Equal(t, DefaultBucket, cfg.BucketName)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
}

func TestObjectKey(t *testing.T) {
	m := &Minio{cfg: Config{Prefix: "minilm/"}}
	assert.Equal(t, "minilm/config.json", m.ObjectKey("config.json"))
	assert.Equal(t, "minilm/1_Pooling/config.json", m.ObjectKey("1_Pooling/config.json"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", contentType("modules.json"))
	assert.Equal(t, "text/plain", contentType("vocab.txt"))
	assert.Equal(t, "application/octet-stream", contentType("model.safetensors"))
}
