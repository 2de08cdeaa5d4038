package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config is the emotive configuration file (~/.config/emotive/config.yaml).
// Every value is a default for the matching CLI flag; flags that were
// set explicitly always win.
type Config struct {
	ModelPath string `yaml:"model_path"`
	VocabPath string `yaml:"vocab_path"`
	OnnxLib   string `yaml:"onnx_lib"`

	Labels    []string `yaml:"labels"`
	MaxLength *int64   `yaml:"max_length"`

	LogLevel string `yaml:"log_level"`

	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "emotive", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or cannot be parsed.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyPipelineConfig fills pipeline flag variables from the config
// file when the corresponding CLI flag was not explicitly set.
func applyPipelineConfig(c *cli.Command, cfg Config,
	modelPath, vocabPath, onnxLib, labels *string, maxLength *int64, logLevel *string,
) {
	if cfg.ModelPath != "" && !c.IsSet("model") {
		*modelPath = cfg.ModelPath
	}
	if cfg.VocabPath != "" && !c.IsSet("vocab") {
		*vocabPath = cfg.VocabPath
	}
	if cfg.OnnxLib != "" && !c.IsSet("onnx-lib") {
		*onnxLib = cfg.OnnxLib
	}
	if len(cfg.Labels) > 0 && !c.IsSet("labels") {
		*labels = joinLabels(cfg.Labels)
	}
	if cfg.MaxLength != nil && !c.IsSet("max-length") {
		*maxLength = *cfg.MaxLength
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		*logLevel = cfg.LogLevel
	}
}

func joinLabels(labels []string) string {
	return strings.Join(labels, ",")
}
