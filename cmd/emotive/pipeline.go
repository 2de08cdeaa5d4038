package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samcharles93/emotive/internal/emotion"
	"github.com/samcharles93/emotive/internal/hfconfig"
	"github.com/samcharles93/emotive/internal/logger"
	"github.com/samcharles93/emotive/internal/ort"
	"github.com/samcharles93/emotive/internal/tokenizer"
	"github.com/samcharles93/emotive/internal/vocab"
)

type pipelineOptions struct {
	modelPath string
	vocabPath string
	onnxLib   string
	labels    string // comma-separated; empty resolves from model config
	maxLength int64
}

// buildClassifier assembles the full pipeline: vocabulary, tokenizer,
// label resolution, ONNX session. The returned cleanup releases the
// session and the runtime environment.
func buildClassifier(opts pipelineOptions, log logger.Logger) (*emotion.Classifier, func(), error) {
	if opts.modelPath == "" {
		return nil, nil, fmt.Errorf("%w: model path is required", emotion.ErrInvalidInput)
	}

	v, err := loadVocabulary(opts.vocabPath, log)
	if err != nil {
		return nil, nil, err
	}
	tok := tokenizer.New(v, int(opts.maxLength))

	labels, err := resolveLabels(opts.modelPath, opts.labels, log)
	if err != nil {
		return nil, nil, err
	}

	if err := ort.Init(opts.onnxLib); err != nil {
		return nil, nil, err
	}

	log.Info("loading model", "path", opts.modelPath)
	session, err := ort.NewSession(opts.modelPath)
	if err != nil {
		_ = ort.Destroy()
		return nil, nil, err
	}
	cleanup := func() {
		_ = session.Close()
		_ = ort.Destroy()
	}

	model := filepath.Base(opts.modelPath)
	return emotion.NewClassifier(tok, session, labels, model), cleanup, nil
}

// loadVocabulary picks the word index: a trained vocab.json, a
// line-per-token text file, or the built-in fallback.
func loadVocabulary(path string, log logger.Logger) (*vocab.Vocabulary, error) {
	if path == "" {
		log.Warn("no vocabulary file supplied, using the built-in word list; " +
			"predictions are most accurate with the vocab.json from training")
		return vocab.Default(), nil
	}
	if filepath.Ext(path) == ".json" {
		return vocab.LoadJSON(path)
	}
	return vocab.LoadText(path)
}

// resolveLabels applies the label precedence: explicit flag, then the
// model's config.json id2label table, then the built-in text labels.
// A model config declaring an audio architecture is rejected outright.
func resolveLabels(modelPath, flagLabels string, log logger.Logger) ([]string, error) {
	cfg, err := hfconfig.LoadForModel(modelPath)
	if err != nil {
		return nil, err
	}
	if cfg != nil && hfconfig.IsAudioArchitecture(cfg.ModelType) {
		return nil, &emotion.UnsupportedModelTypeError{ModelType: cfg.ModelType}
	}

	if flagLabels != "" {
		return parseLabels(flagLabels), nil
	}
	if cfg != nil {
		labels := emotion.ResolveLabels(cfg.ID2Label, emotion.DefaultTextLabels)
		log.Debug("labels resolved", "count", len(labels), "from_config", len(cfg.ID2Label) > 0)
		return labels, nil
	}
	return emotion.DefaultTextLabels, nil
}

func parseLabels(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
