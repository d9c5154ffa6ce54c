package embedding

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/embedding-service/pkg/model"
	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
)

func vector(dim int, fill float32) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = fill
	}
	return v
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func testArtifact() *model.Artifact {
	return &model.Artifact{Dimension: model.Dimension, MaxSequenceLength: model.MaxSequenceLength}
}

func TestEncoder_EncodeNormalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Type().Return("tei").AnyTimes()
	p.EXPECT().Embed(gomock.Any(), []string{"a", "b"}).
		Return([][]float32{vector(384, 2), vector(384, -0.5)}, nil)

	enc := NewEncoder(model.DefaultName, testArtifact(), p)
	out, err := enc.Encode(context.Background(), []string{"a", "b"}, true)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, v := range out {
		assert.Len(t, v, 384)
		assert.InDelta(t, 1.0, norm(v), 1e-5)
	}
}

func TestEncoder_EncodeRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Type().Return("tei").AnyTimes()
	p.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{vector(384, 2)}, nil)

	enc := NewEncoder(model.DefaultName, testArtifact(), p)
	out, err := enc.Encode(context.Background(), []string{"a"}, false)
	require.NoError(t, err)
	assert.Equal(t, float32(2), out[0][0])
}

func TestEncoder_ZeroVectorStaysZero(t *testing.T) {
	v := vector(4, 0)
	l2Normalize(v)
	assert.Equal(t, []float32{0, 0, 0, 0}, v)
}

func TestEncoder_CountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Type().Return("tei").AnyTimes()
	p.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{vector(384, 1)}, nil)

	enc := NewEncoder(model.DefaultName, testArtifact(), p)
	_, err := enc.Encode(context.Background(), []string{"a", "b"}, true)
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestEncoder_DimensionMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Type().Return("tei").AnyTimes()
	p.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{vector(768, 1)}, nil)

	enc := NewEncoder(model.DefaultName, testArtifact(), p)
	_, err := enc.Encode(context.Background(), []string{"a"}, true)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestEncoder_EmptyInputSkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)

	enc := NewEncoder(model.DefaultName, testArtifact(), p)
	_, err := enc.Encode(context.Background(), nil, true)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestEncoder_ReportsToObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Type().Return("ollama").AnyTimes()
	backendErr := errors.New("connection refused")
	p.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, backendErr)

	var got []observability.OperationContext
	enc := NewEncoder("m", testArtifact(), p).WithObserver(observability.ObserverFunc(func(c observability.OperationContext) {
		got = append(got, c)
	}))

	_, err := enc.Encode(context.Background(), []string{"a", "b", "c"}, true)
	require.ErrorIs(t, err, backendErr)
	require.Len(t, got, 1)
	assert.Equal(t, "embedding", got[0].Component)
	assert.Equal(t, "encode", got[0].Operation)
	assert.Equal(t, "m", got[0].Resource)
	assert.Equal(t, "ollama", got[0].SubResource)
	assert.Equal(t, int64(3), got[0].Size)
	assert.ErrorIs(t, got[0].Error, backendErr)
}

func writeTestArtifact(t *testing.T, hiddenSize string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		model.ConfigFile:             `{"hidden_size":` + hiddenSize + `}`,
		model.SentenceBertConfigFile: `{"max_seq_length":256}`,
		model.ModulesFile: `[{"idx":0,"name":"0","path":"","type":"sentence_transformers.models.Transformer"},
			{"idx":1,"name":"1","path":"1_Pooling","type":"sentence_transformers.models.Pooling"}]`,
		model.SafetensorsWeightsFile: "weights",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func newTestLoader(t *testing.T, dir string, p Provider) *Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	cfg := DefaultConfig()
	cfg.ModelPath = dir
	l := NewLoader(cfg, log)
	l.newProvider = func(Config) (Provider, error) { return p, nil }
	return l
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Type().Return("tei").AnyTimes()
	p.EXPECT().Embed(gomock.Any(), []string{warmupText}).Return([][]float32{vector(384, 1)}, nil)

	enc, err := newTestLoader(t, writeTestArtifact(t, "384"), p).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultName, enc.Name())
	assert.Equal(t, 384, enc.Dimension())
	assert.Equal(t, 256, enc.MaxSequenceLength())
}

func TestLoader_MissingArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)

	_, err := newTestLoader(t, filepath.Join(t.TempDir(), "missing"), p).Load(context.Background())
	assert.ErrorIs(t, err, model.ErrArtifactInvalid)
}

func TestLoader_WrongArtifactDimension(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)

	_, err := newTestLoader(t, writeTestArtifact(t, "768"), p).Load(context.Background())
	assert.ErrorIs(t, err, model.ErrArtifactInvalid)
}

func TestLoader_WarmupDimensionMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Type().Return("tei").AnyTimes()
	p.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{vector(1024, 1)}, nil)

	_, err := newTestLoader(t, writeTestArtifact(t, "384"), p).Load(context.Background())
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestLoader_AppliesWrapper(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockProvider(ctrl)
	outer := NewMockProvider(ctrl)
	outer.EXPECT().Type().Return("cached").AnyTimes()
	outer.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{vector(384, 1)}, nil)

	var wrapped Provider
	l := newTestLoader(t, writeTestArtifact(t, "384"), inner).WithProviderWrapper(func(p Provider) Provider {
		wrapped = p
		return outer
	})

	_, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, inner, wrapped)
}
