package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeArtifact(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, ConfigFile, `{"_name_or_path":"nreimers/MiniLM-L6-H384-uncased","hidden_size":384,"model_type":"bert"}`)
	writeFile(t, dir, SentenceBertConfigFile, `{"max_seq_length":256,"do_lower_case":false}`)
	writeFile(t, dir, ModulesFile, `[
		{"idx":0,"name":"0","path":"","type":"sentence_transformers.models.Transformer"},
		{"idx":1,"name":"1","path":"1_Pooling","type":"sentence_transformers.models.Pooling"},
		{"idx":2,"name":"2","path":"2_Normalize","type":"sentence_transformers.models.Normalize"}
	]`)
	writeFile(t, dir, PoolingConfigFile, `{"word_embedding_dimension":384,"pooling_mode_mean_tokens":true}`)
	writeFile(t, dir, SafetensorsWeightsFile, "weights")
	return dir
}

func TestOpen_ValidArtifact(t *testing.T) {
	dir := writeArtifact(t)

	a, err := Open(dir, OpenOptions{ExpectedDimension: Dimension})
	require.NoError(t, err)

	assert.Equal(t, dir, a.Path)
	assert.Equal(t, 384, a.Dimension)
	assert.Equal(t, 256, a.MaxSequenceLength)
	assert.Equal(t, SafetensorsWeightsFile, a.WeightsFile)
	assert.Len(t, a.Modules, 3)
	assert.Nil(t, a.Manifest)
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), OpenOptions{})
	assert.ErrorIs(t, err, ErrArtifactInvalid)
}

func TestOpen_FileInsteadOfDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "model", "x")

	_, err := Open(filepath.Join(dir, "model"), OpenOptions{})
	assert.ErrorIs(t, err, ErrArtifactInvalid)
}

func TestOpen_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, dir string)
	}{
		{
			name: "missing config",
			mutate: func(t *testing.T, dir string) {
				require.NoError(t, os.Remove(filepath.Join(dir, ConfigFile)))
			},
		},
		{
			name: "zero hidden size",
			mutate: func(t *testing.T, dir string) {
				writeFile(t, dir, ConfigFile, `{"hidden_size":0}`)
			},
		},
		{
			name: "corrupt sentence bert config",
			mutate: func(t *testing.T, dir string) {
				writeFile(t, dir, SentenceBertConfigFile, `{`)
			},
		},
		{
			name: "no pooling module",
			mutate: func(t *testing.T, dir string) {
				writeFile(t, dir, ModulesFile, `[{"idx":0,"name":"0","path":"","type":"sentence_transformers.models.Transformer"}]`)
			},
		},
		{
			name: "pooling dimension mismatch",
			mutate: func(t *testing.T, dir string) {
				writeFile(t, dir, PoolingConfigFile, `{"word_embedding_dimension":768}`)
			},
		},
		{
			name: "no weights",
			mutate: func(t *testing.T, dir string) {
				require.NoError(t, os.Remove(filepath.Join(dir, SafetensorsWeightsFile)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeArtifact(t)
			tt.mutate(t, dir)

			_, err := Open(dir, OpenOptions{})
			assert.ErrorIs(t, err, ErrArtifactInvalid)
		})
	}
}

func TestOpen_PytorchWeightsAccepted(t *testing.T) {
	dir := writeArtifact(t)
	require.NoError(t, os.Rename(filepath.Join(dir, SafetensorsWeightsFile), filepath.Join(dir, PytorchWeightsFile)))

	a, err := Open(dir, OpenOptions{})
	require.NoError(t, err)
	assert.Equal(t, PytorchWeightsFile, a.WeightsFile)
}

func TestOpen_UnexpectedDimension(t *testing.T) {
	dir := writeArtifact(t)
	writeFile(t, dir, ConfigFile, `{"hidden_size":768}`)
	writeFile(t, dir, PoolingConfigFile, `{"word_embedding_dimension":768}`)

	_, err := Open(dir, OpenOptions{ExpectedDimension: Dimension})
	assert.ErrorIs(t, err, ErrArtifactInvalid)
}

func writeManifest(t *testing.T, dir string) *Manifest {
	t.Helper()
	m := &Manifest{Model: DefaultName, Revision: "main", Source: "test"}
	for _, name := range []string{ConfigFile, SafetensorsWeightsFile} {
		sum, size, err := HashFile(filepath.Join(dir, name))
		require.NoError(t, err)
		m.Files = append(m.Files, ManifestFile{Path: name, Size: size, SHA256: sum})
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	writeFile(t, dir, ManifestFileName, string(data))
	return m
}

func TestOpen_WithManifest(t *testing.T) {
	dir := writeArtifact(t)
	m := writeManifest(t, dir)

	a, err := Open(dir, OpenOptions{VerifyChecksums: true})
	require.NoError(t, err)
	require.NotNil(t, a.Manifest)
	assert.Equal(t, DefaultName, a.Name)
	assert.Equal(t, m.TotalSize(), a.Manifest.TotalSize())
}

func TestOpen_ChecksumMismatch(t *testing.T) {
	dir := writeArtifact(t)
	writeManifest(t, dir)
	writeFile(t, dir, SafetensorsWeightsFile, "tampered")

	_, err := Open(dir, OpenOptions{VerifyChecksums: true})
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	// without verification the tampered file is not noticed
	_, err = Open(dir, OpenOptions{})
	assert.NoError(t, err)
}

func TestMiniLMInfo(t *testing.T) {
	info := MiniLMInfo()
	assert.Equal(t, DefaultName, info.ModelName)
	assert.Equal(t, 384, info.EmbeddingDim)
	assert.Equal(t, 256, info.MaxSequenceLength)
	assert.Len(t, info.UseCases, 6)

	info.UseCases[0] = "changed"
	assert.Equal(t, "Semantic search", MiniLMInfo().UseCases[0])
}
