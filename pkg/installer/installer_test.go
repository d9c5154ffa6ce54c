package installer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/model"
	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
)

var artifactFiles = map[string]string{
	model.ModulesFile: `[{"idx":0,"name":"0","path":"","type":"sentence_transformers.models.Transformer"},
		{"idx":1,"name":"1","path":"1_Pooling","type":"sentence_transformers.models.Pooling"}]`,
	model.SentenceTransformersFile: `{"__version__":{"sentence_transformers":"2.0.0"}}`,
	model.SentenceBertConfigFile:   `{"max_seq_length":256,"do_lower_case":false}`,
	model.ConfigFile:               `{"hidden_size":384,"model_type":"bert"}`,
	model.SafetensorsWeightsFile:   strings.Repeat("w", 4096),
	"tokenizer.json":               `{}`,
	"tokenizer_config.json":        `{}`,
	"special_tokens_map.json":      `{}`,
	"vocab.txt":                    "[PAD]\n[UNK]\n",
	model.PoolingConfigFile:        `{"word_embedding_dimension":384}`,
}

func newHub(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	prefix := "/" + model.DefaultName + "/resolve/main/"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(r.URL.Path, prefix)
		content, ok := files[rel]
		if !ok || rel == r.URL.Path {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, content)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, hubURL string) Config {
	cfg := DefaultConfig()
	cfg.Dir = filepath.Join(t.TempDir(), "opt", "models", "minilm")
	cfg.HubURL = hubURL
	return cfg
}

type fakeMirror struct {
	mu      sync.Mutex
	objects map[string][]byte
	order   []string
	err     error
}

func (f *fakeMirror) EnsureBucket(ctx context.Context) error { return f.err }

func (f *fakeMirror) Put(ctx context.Context, rel string, r io.Reader, size int64) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[rel] = data
	f.order = append(f.order, rel)
	return int64(len(data)), nil
}

func TestInstall_FromHub(t *testing.T) {
	hub := newHub(t, artifactFiles)
	cfg := testConfig(t, hub.URL)

	var ops []observability.OperationContext
	var mu sync.Mutex
	inst := New(cfg, afs.New(), NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision), nil, logger.NewNopLogger()).
		WithObserver(observability.ObserverFunc(func(c observability.OperationContext) {
			mu.Lock()
			ops = append(ops, c)
			mu.Unlock()
		}))

	manifest, err := inst.Install(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.DefaultName, manifest.Model)
	assert.Equal(t, "main", manifest.Revision)
	require.Len(t, manifest.Files, len(artifactFiles))
	for rel, content := range artifactFiles {
		data, err := os.ReadFile(filepath.Join(cfg.Dir, filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
		assert.Equal(t, content, string(data), rel)
	}
	assert.Len(t, ops, len(artifactFiles))

	// the result is a valid artifact whose checksums match
	a, err := model.Open(cfg.Dir, model.OpenOptions{VerifyChecksums: true, ExpectedDimension: model.Dimension})
	require.NoError(t, err)
	require.NotNil(t, a.Manifest)
	assert.Equal(t, manifest.TotalSize(), a.Manifest.TotalSize())
}

func TestInstall_OverwritesExistingFiles(t *testing.T) {
	hub := newHub(t, artifactFiles)
	cfg := testConfig(t, hub.URL)
	require.NoError(t, os.MkdirAll(cfg.Dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, model.ConfigFile), []byte("stale and much longer than the new content"), 0o644))

	_, err := New(cfg, afs.New(), NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision), nil, logger.NewNopLogger()).
		Install(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Dir, model.ConfigFile))
	require.NoError(t, err)
	assert.Equal(t, artifactFiles[model.ConfigFile], string(data))
}

func TestInstall_MissingFileFails(t *testing.T) {
	files := map[string]string{}
	for k, v := range artifactFiles {
		files[k] = v
	}
	delete(files, "vocab.txt")
	hub := newHub(t, files)
	cfg := testConfig(t, hub.URL)

	_, err := New(cfg, afs.New(), NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision), nil, logger.NewNopLogger()).
		Install(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "vocab.txt")
	assert.ErrorContains(t, err, "404")

	_, statErr := os.Stat(filepath.Join(cfg.Dir, model.ManifestFileName))
	assert.True(t, os.IsNotExist(statErr), "manifest must not be written on failure")

	_, statErr = os.Stat(filepath.Join(cfg.Dir, "vocab.txt"))
	assert.True(t, os.IsNotExist(statErr), "error page must not be installed as a model file")
}

func TestInstall_FailedRerunRemovesManifest(t *testing.T) {
	hub := newHub(t, artifactFiles)
	cfg := testConfig(t, hub.URL)

	_, err := New(cfg, afs.New(), NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision), nil, logger.NewNopLogger()).
		Install(context.Background())
	require.NoError(t, err)
	_, err = model.Open(cfg.Dir, model.OpenOptions{VerifyChecksums: true})
	require.NoError(t, err)

	files := map[string]string{}
	for k, v := range artifactFiles {
		files[k] = v
	}
	delete(files, model.PoolingConfigFile)
	broken := newHub(t, files)
	cfg.HubURL = broken.URL

	_, err = New(cfg, afs.New(), NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision), nil, logger.NewNopLogger()).
		Install(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(cfg.Dir, model.ManifestFileName))
	assert.True(t, os.IsNotExist(statErr), "stale manifest must not survive a failed run")
	_, err = model.ReadManifest(cfg.Dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInstall_MirrorsManifestLast(t *testing.T) {
	hub := newHub(t, artifactFiles)
	cfg := testConfig(t, hub.URL)
	mirror := &fakeMirror{}

	_, err := New(cfg, afs.New(), NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision), mirror, logger.NewNopLogger()).
		Install(context.Background())
	require.NoError(t, err)

	require.Len(t, mirror.objects, len(artifactFiles)+1)
	assert.Equal(t, model.ManifestFileName, mirror.order[len(mirror.order)-1])
	assert.Equal(t, artifactFiles["vocab.txt"], string(mirror.objects["vocab.txt"]))

	var m model.Manifest
	require.NoError(t, json.Unmarshal(mirror.objects[model.ManifestFileName], &m))
	assert.Len(t, m.Files, len(artifactFiles))
}

func TestInstall_MirrorFailure(t *testing.T) {
	hub := newHub(t, artifactFiles)
	cfg := testConfig(t, hub.URL)
	mirror := &fakeMirror{err: errors.New("access denied")}

	_, err := New(cfg, afs.New(), NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision), mirror, logger.NewNopLogger()).
		Install(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

type fakeBucket struct {
	files map[string]string
}

func (f *fakeBucket) Open(ctx context.Context, rel string) (io.ReadCloser, int64, error) {
	content, ok := f.files[rel]
	if !ok {
		return nil, 0, errors.New("NoSuchKey")
	}
	return io.NopCloser(bytes.NewReader([]byte(content))), int64(len(content)), nil
}

func (f *fakeBucket) Bucket() string { return "models" }
func (f *fakeBucket) Prefix() string { return "minilm" }

func TestInstall_FromMinio(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.FromMinio = true
	cfg.Minio.Endpoint = "minio:9000"

	source := NewMinioSource(&fakeBucket{files: artifactFiles})
	manifest, err := New(cfg, afs.New(), source, nil, logger.NewNopLogger()).Install(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3://models/minilm", manifest.Source)

	_, err = model.Open(cfg.Dir, model.OpenOptions{VerifyChecksums: true})
	assert.NoError(t, err)
}

func TestHubSource_URL(t *testing.T) {
	h := NewHubSource(nil, "https://huggingface.co/", model.DefaultName, "main")
	assert.Equal(t,
		"https://huggingface.co/sentence-transformers/all-MiniLM-L6-v2/resolve/main/1_Pooling/config.json",
		h.URL(model.PoolingConfigFile))
}

func TestHubSource_OpenRejectsErrorStatus(t *testing.T) {
	hub := newHub(t, map[string]string{model.ConfigFile: "{}"})
	h := NewHubSource(hub.Client(), hub.URL, model.DefaultName, "main")

	r, err := h.Open(context.Background(), model.ConfigFile)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	r, err = h.Open(context.Background(), "missing.json")
	assert.Nil(t, r)
	assert.ErrorContains(t, err, "404")
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty model", func(c *Config) { c.Model = "" }},
		{"empty dir", func(c *Config) { c.Dir = " " }},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }},
		{"no files", func(c *Config) { c.Files = nil }},
		{"escaping path", func(c *Config) { c.Files = []string{"../etc/passwd"} }},
		{"absolute path", func(c *Config) { c.Files = []string{"/etc/passwd"} }},
		{"minio without endpoint", func(c *Config) { c.FromMinio = true }},
		{"mirror without endpoint", func(c *Config) { c.MirrorToMinio = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
