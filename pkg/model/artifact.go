package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact is a validated sentence-transformers model directory.
type Artifact struct {
	Path              string
	Name              string
	Dimension         int
	MaxSequenceLength int
	DoLowerCase       bool
	Modules           []Module
	WeightsFile       string

	// Manifest is nil when the directory was not produced by the installer.
	Manifest *Manifest
}

// Module is one entry of modules.json.
type Module struct {
	Idx  int    `json:"idx"`
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// OpenOptions tune Open.
type OpenOptions struct {
	// VerifyChecksums re-hashes every file listed in the install manifest.
	VerifyChecksums bool

	// ExpectedDimension fails Open when the transformer hidden size differs.
	// Zero disables the check.
	ExpectedDimension int
}

type transformerConfig struct {
	HiddenSize int    `json:"hidden_size"`
	ModelType  string `json:"model_type"`
	NameOrPath string `json:"_name_or_path"`
}

type sentenceBertConfig struct {
	MaxSeqLength int  `json:"max_seq_length"`
	DoLowerCase  bool `json:"do_lower_case"`
}

type poolingConfig struct {
	WordEmbeddingDimension int `json:"word_embedding_dimension"`
}

// Open validates the model directory at dir and returns its description.
// Every failure wraps ErrArtifactInvalid or ErrChecksumMismatch.
func Open(dir string, opts OpenOptions) (*Artifact, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactInvalid, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrArtifactInvalid, dir)
	}

	a := &Artifact{Path: dir}

	var tc transformerConfig
	if err := readJSON(dir, ConfigFile, &tc); err != nil {
		return nil, err
	}
	if tc.HiddenSize <= 0 {
		return nil, fmt.Errorf("%w: %s has no hidden_size", ErrArtifactInvalid, ConfigFile)
	}
	a.Dimension = tc.HiddenSize
	a.Name = tc.NameOrPath

	var sbc sentenceBertConfig
	if err := readJSON(dir, SentenceBertConfigFile, &sbc); err != nil {
		return nil, err
	}
	if sbc.MaxSeqLength <= 0 {
		return nil, fmt.Errorf("%w: %s has no max_seq_length", ErrArtifactInvalid, SentenceBertConfigFile)
	}
	a.MaxSequenceLength = sbc.MaxSeqLength
	a.DoLowerCase = sbc.DoLowerCase

	if err := readJSON(dir, ModulesFile, &a.Modules); err != nil {
		return nil, err
	}
	if err := checkModules(a.Modules); err != nil {
		return nil, err
	}

	var pc poolingConfig
	if err := readJSON(dir, PoolingConfigFile, &pc); err == nil && pc.WordEmbeddingDimension != 0 && pc.WordEmbeddingDimension != a.Dimension {
		return nil, fmt.Errorf("%w: pooling dimension %d != hidden size %d", ErrArtifactInvalid, pc.WordEmbeddingDimension, a.Dimension)
	}

	for _, w := range weightFiles {
		if _, err := os.Stat(filepath.Join(dir, w)); err == nil {
			a.WeightsFile = w
			break
		}
	}
	if a.WeightsFile == "" {
		return nil, fmt.Errorf("%w: no weights file (%s) in %s", ErrArtifactInvalid, strings.Join(weightFiles, ", "), dir)
	}

	if opts.ExpectedDimension > 0 && a.Dimension != opts.ExpectedDimension {
		return nil, fmt.Errorf("%w: dimension %d, expected %d", ErrArtifactInvalid, a.Dimension, opts.ExpectedDimension)
	}

	manifest, err := ReadManifest(dir)
	switch {
	case err == nil:
		a.Manifest = manifest
		if manifest.Model != "" {
			a.Name = manifest.Model
		}
		if opts.VerifyChecksums {
			if err := manifest.Verify(dir); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, os.ErrNotExist):
		// hand-copied model directory, nothing to verify against
	default:
		return nil, err
	}

	return a, nil
}

func checkModules(modules []Module) error {
	var transformer, pooling bool
	for _, m := range modules {
		switch {
		case strings.HasSuffix(m.Type, ".Transformer"):
			transformer = true
		case strings.HasSuffix(m.Type, ".Pooling"):
			pooling = true
		}
	}
	if !transformer || !pooling {
		return fmt.Errorf("%w: %s must list a Transformer and a Pooling module", ErrArtifactInvalid, ModulesFile)
	}
	return nil
}

func readJSON(dir, name string, out any) error {
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactInvalid, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrArtifactInvalid, name, err)
	}
	return nil
}
