package installer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/embedding-service/pkg/model"
	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
)

// Logger defines the logging operations the installer needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Installer downloads a model artifact into a local directory.
type Installer struct {
	cfg    Config
	fs     afs.Service
	source Source
	mirror Mirror

	logger   Logger
	observer observability.Observer

	now func() time.Time
}

// New creates an Installer reading from source. Pass a nil mirror to skip mirroring.
func New(cfg Config, fs afs.Service, source Source, mirror Mirror, logger Logger) *Installer {
	return &Installer{
		cfg:    cfg,
		fs:     fs,
		source: source,
		mirror: mirror,
		logger: logger,
		now:    time.Now,
	}
}

func (i *Installer) WithObserver(o observability.Observer) *Installer {
	i.observer = o
	return i
}

// Install fetches every configured file concurrently, hashing as it writes,
// then writes install_manifest.json and finally mirrors the result if a
// mirror is set. Any existing manifest is removed before the first download,
// so a failed run leaves a partial directory without one; re-running
// overwrites it.
func (i *Installer) Install(ctx context.Context) (*model.Manifest, error) {
	if err := i.cfg.Validate(); err != nil {
		return nil, err
	}

	start := i.now()
	i.logger.Info("Installing model", nil, map[string]interface{}{
		"model":  i.cfg.Model,
		"source": i.source.Describe(),
		"dir":    i.cfg.Dir,
		"files":  len(i.cfg.Files),
	})

	// parent directories are created up front so concurrent fetches never race on them
	if err := i.ensureDir(ctx, i.cfg.Dir); err != nil {
		return nil, err
	}
	for _, dir := range i.parentDirs() {
		if err := i.ensureDir(ctx, dir); err != nil {
			return nil, err
		}
	}

	if err := i.removeManifest(ctx); err != nil {
		return nil, err
	}

	entries := make([]model.ManifestFile, len(i.cfg.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.cfg.Concurrency)
	for idx, rel := range i.cfg.Files {
		idx, rel := idx, rel
		g.Go(func() error {
			entry, err := i.fetch(gctx, rel)
			if err != nil {
				return fmt.Errorf("install %s: %w", rel, err)
			}
			entries[idx] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		i.logger.Error("Model installation failed", err, map[string]interface{}{"dir": i.cfg.Dir})
		return nil, err
	}

	sort.Slice(entries, func(a, b int) bool { return entries[a].Path < entries[b].Path })
	manifest := &model.Manifest{
		Model:       i.cfg.Model,
		Revision:    i.cfg.Revision,
		Source:      i.source.Describe(),
		InstalledAt: i.now().UTC(),
		Files:       entries,
	}
	if err := i.writeManifest(ctx, manifest); err != nil {
		return nil, err
	}

	if i.mirror != nil {
		if err := i.mirrorFiles(ctx, manifest); err != nil {
			return nil, err
		}
	}

	i.logger.Info("Model installed", nil, map[string]interface{}{
		"model":       i.cfg.Model,
		"dir":         i.cfg.Dir,
		"bytes":       manifest.TotalSize(),
		"duration_ms": i.now().Sub(start).Milliseconds(),
	})
	return manifest, nil
}

func (i *Installer) fetch(ctx context.Context, rel string) (entry model.ManifestFile, err error) {
	start := time.Now()
	defer func() {
		i.observe("download", rel, time.Since(start), err, entry.Size)
	}()

	reader, err := i.source.Open(ctx, rel)
	if err != nil {
		return entry, err
	}
	defer reader.Close()

	target := i.localPath(rel)
	h := sha256.New()
	counter := &countingReader{r: io.TeeReader(reader, h)}
	if err := i.fs.Upload(ctx, target, file.DefaultFileOsMode, counter); err != nil {
		return entry, fmt.Errorf("write %s: %w", target, err)
	}

	entry = model.ManifestFile{Path: rel, Size: counter.n, SHA256: hex.EncodeToString(h.Sum(nil))}
	i.logger.Info("Downloaded file", nil, map[string]interface{}{
		"file":  rel,
		"bytes": entry.Size,
	})
	return entry, nil
}

func (i *Installer) removeManifest(ctx context.Context) error {
	target := i.localPath(model.ManifestFileName)
	exists, err := i.fs.Exists(ctx, target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}
	if !exists {
		return nil
	}
	if err := i.fs.Delete(ctx, target); err != nil {
		return fmt.Errorf("remove stale manifest: %w", err)
	}
	return nil
}

func (i *Installer) writeManifest(ctx context.Context, m *model.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := i.fs.Upload(ctx, i.localPath(model.ManifestFileName), file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// mirrorFiles uploads the installed files and then the manifest, so a mirror
// with a manifest is always complete.
func (i *Installer) mirrorFiles(ctx context.Context, m *model.Manifest) error {
	if err := i.mirror.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("mirror: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.cfg.Concurrency)
	for _, f := range m.Files {
		f := f
		g.Go(func() error {
			return i.mirrorOne(gctx, f.Path, f.Size)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if _, err := i.mirror.Put(ctx, model.ManifestFileName, bytes.NewReader(data), int64(len(data))); err != nil {
		return fmt.Errorf("mirror %s: %w", model.ManifestFileName, err)
	}

	i.logger.Info("Model mirrored", nil, map[string]interface{}{"files": len(m.Files) + 1})
	return nil
}

func (i *Installer) mirrorOne(ctx context.Context, rel string, size int64) (err error) {
	start := time.Now()
	defer func() {
		i.observe("mirror", rel, time.Since(start), err, size)
	}()

	reader, err := i.fs.OpenURL(ctx, i.localPath(rel))
	if err != nil {
		return fmt.Errorf("mirror %s: %w", rel, err)
	}
	defer reader.Close()

	if _, err := i.mirror.Put(ctx, rel, reader, size); err != nil {
		return fmt.Errorf("mirror %s: %w", rel, err)
	}
	return nil
}

func (i *Installer) ensureDir(ctx context.Context, dir string) error {
	exists, err := i.fs.Exists(ctx, dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if exists {
		return nil
	}
	if err := i.fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

// parentDirs lists the distinct subdirectories the file set needs, sorted.
func (i *Installer) parentDirs() []string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, rel := range i.cfg.Files {
		dir := filepath.Dir(i.localPath(rel))
		if dir == filepath.Clean(i.cfg.Dir) {
			continue
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

func (i *Installer) localPath(rel string) string {
	return filepath.Join(i.cfg.Dir, filepath.FromSlash(path.Clean(rel)))
}

func (i *Installer) observe(operation, rel string, d time.Duration, err error, size int64) {
	if i.observer == nil {
		return
	}
	i.observer.ObserveOperation(observability.OperationContext{
		Component:   "installer",
		Operation:   operation,
		Resource:    i.cfg.Model,
		SubResource: rel,
		Duration:    d,
		Error:       err,
		Size:        size,
	})
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
