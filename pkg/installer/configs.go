package installer

import (
	"fmt"
	"strings"

	"github.com/Aleph-Alpha/embedding-service/pkg/minio"
	"github.com/Aleph-Alpha/embedding-service/pkg/model"
)

const (
	DefaultHubURL      = "https://huggingface.co"
	DefaultRevision    = "main"
	DefaultConcurrency = 4
)

// Config controls one installation run.
type Config struct {
	// Model is the Hugging Face repository id.
	Model string `yaml:"model" envconfig:"INSTALL_MODEL"`

	// Dir is the target directory. It is created if absent and existing
	// files are overwritten.
	Dir string `yaml:"dir" envconfig:"INSTALL_DIR"`

	Revision string `yaml:"revision" envconfig:"INSTALL_REVISION"`
	HubURL   string `yaml:"hub_url" envconfig:"INSTALL_HUB_URL"`

	// Concurrency bounds parallel downloads.
	Concurrency int `yaml:"concurrency" envconfig:"INSTALL_CONCURRENCY"`

	// Files overrides the file set to fetch, relative to the model root.
	Files []string `yaml:"files" envconfig:"INSTALL_FILES"`

	// FromMinio installs from the object-store mirror instead of the hub.
	FromMinio bool `yaml:"from_minio" envconfig:"INSTALL_FROM_MINIO"`

	// MirrorToMinio uploads the installed files to the object store afterwards.
	MirrorToMinio bool `yaml:"mirror_to_minio" envconfig:"INSTALL_MIRROR_TO_MINIO"`

	// Minio is populated from the top-level minio section.
	Minio minio.Config `yaml:"-" ignored:"true"`
}

// DefaultConfig installs all-MiniLM-L6-v2 into /opt/models/minilm.
func DefaultConfig() Config {
	return Config{
		Model:       model.DefaultName,
		Dir:         model.DefaultInstallDir,
		Revision:    DefaultRevision,
		HubURL:      DefaultHubURL,
		Concurrency: DefaultConcurrency,
		Files:       append([]string(nil), model.SentenceTransformerFiles...),
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("installer: model is required")
	}
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("installer: target directory is required")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("installer: concurrency must be positive, got %d", c.Concurrency)
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("installer: no files to install")
	}
	for _, f := range c.Files {
		if f == "" || strings.HasPrefix(f, "/") || strings.Contains(f, "..") {
			return fmt.Errorf("installer: invalid file path %q", f)
		}
	}
	if !c.FromMinio && c.HubURL == "" {
		return fmt.Errorf("installer: hub url is required")
	}
	if (c.FromMinio || c.MirrorToMinio) && c.Minio.Endpoint == "" {
		return fmt.Errorf("installer: MINIO_ENDPOINT is required for minio source or mirror")
	}
	return nil
}
