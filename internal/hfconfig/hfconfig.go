// Package hfconfig reads the HuggingFace config.json that ships next to
// an exported model. Only the fields the pipeline consumes are parsed:
// the architecture tag and the id2label table. Resolution is strictly
// local; nothing is fetched over the network.
package hfconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// FileName is the conventional config file name in a model directory.
const FileName = "config.json"

// Config carries the subset of model metadata the pipeline uses.
type Config struct {
	ModelType string            `json:"model_type"`
	ID2Label  map[string]string `json:"id2label"`
}

// Load parses a config.json file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hfconfig: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("hfconfig: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Locate finds the config.json belonging to a model path: the file
// itself when modelPath is a directory, otherwise the sibling
// config.json of the model file. Returns an empty string when no config
// is present, which is not an error — label resolution then falls back
// to the defaults.
func Locate(modelPath string) string {
	info, err := os.Stat(modelPath)
	if err != nil {
		return ""
	}
	dir := filepath.Dir(modelPath)
	if info.IsDir() {
		dir = modelPath
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// LoadForModel combines Locate and Load. A missing config yields a nil
// Config and no error; a present but unreadable one is reported.
func LoadForModel(modelPath string) (*Config, error) {
	path := Locate(modelPath)
	if path == "" {
		return nil, nil
	}
	cfg, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}

// audioArchitectures are the model families the original audio pipeline
// accepted. The text pipeline rejects them.
var audioArchitectures = map[string]bool{
	"wav2vec2": true,
	"wavlm":    true,
	"hubert":   true,
}

// IsAudioArchitecture reports whether modelType names a speech model
// family.
func IsAudioArchitecture(modelType string) bool {
	return audioArchitectures[modelType]
}
