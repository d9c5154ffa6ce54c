package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Source yields the files of one model revision.
type Source interface {
	Open(ctx context.Context, rel string) (io.ReadCloser, error)

	// Describe is recorded in the install manifest.
	Describe() string
}

// Mirror receives a copy of the installed files.
type Mirror interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, rel string, reader io.Reader, size int64) (int64, error)
}

// HubSource reads from a Hugging Face hub through its resolve endpoint:
// <hub>/<model>/resolve/<revision>/<file>.
type HubSource struct {
	client   *http.Client
	baseURL  string
	model    string
	revision string
}

// NewHubSource uses http.DefaultClient when client is nil.
func NewHubSource(client *http.Client, hubURL, model, revision string) *HubSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HubSource{
		client:   client,
		baseURL:  strings.TrimRight(hubURL, "/"),
		model:    model,
		revision: revision,
	}
}

func (h *HubSource) URL(rel string) string {
	return fmt.Sprintf("%s/%s/resolve/%s/%s", h.baseURL, h.model, h.revision, rel)
}

// Open fails on any non-2xx response so an error page is never installed
// as a model file.
func (h *HubSource) Open(ctx context.Context, rel string) (io.ReadCloser, error) {
	url := h.URL(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", rel, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}

func (h *HubSource) Describe() string {
	return fmt.Sprintf("%s/%s@%s", h.baseURL, h.model, h.revision)
}

// minioOpener is the part of *minio.Minio the installer reads through.
type minioOpener interface {
	Open(ctx context.Context, rel string) (io.ReadCloser, int64, error)
	Bucket() string
	Prefix() string
}

// MinioSource reads a previously mirrored model.
type MinioSource struct {
	client minioOpener
}

func NewMinioSource(client minioOpener) *MinioSource {
	return &MinioSource{client: client}
}

func (m *MinioSource) Open(ctx context.Context, rel string) (io.ReadCloser, error) {
	r, _, err := m.client.Open(ctx, rel)
	return r, err
}

func (m *MinioSource) Describe() string {
	return fmt.Sprintf("s3://%s/%s", m.client.Bucket(), m.client.Prefix())
}
