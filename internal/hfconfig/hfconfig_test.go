package hfconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `{
		"model_type": "wav2vec2",
		"id2label": {"0": "angry", "1": "happy"},
		"hidden_size": 768
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ModelType != "wav2vec2" {
		t.Fatalf("model type: got %q want wav2vec2", cfg.ModelType)
	}
	if cfg.ID2Label["1"] != "happy" {
		t.Fatalf("id2label: got %q want happy", cfg.ID2Label["1"])
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `{"model_type":`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLocateNextToModelFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `{}`)
	model := filepath.Join(dir, "model.onnx")
	if err := os.WriteFile(model, []byte("onnx"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := Locate(model); got != filepath.Join(dir, FileName) {
		t.Fatalf("locate: got %q", got)
	}
}

func TestLocateInModelDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `{}`)
	if got := Locate(dir); got != filepath.Join(dir, FileName) {
		t.Fatalf("locate: got %q", got)
	}
}

func TestLocateMissingConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	model := filepath.Join(dir, "model.onnx")
	if err := os.WriteFile(model, []byte("onnx"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Locate(model); got != "" {
		t.Fatalf("locate: got %q want empty", got)
	}
}

func TestLoadForModelMissingConfigIsNotAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	model := filepath.Join(dir, "model.onnx")
	if err := os.WriteFile(model, []byte("onnx"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadForModel(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Fatalf("expected nil config, got %+v", cfg)
	}
}

func TestIsAudioArchitecture(t *testing.T) {
	t.Parallel()

	for _, arch := range []string{"wav2vec2", "wavlm", "hubert"} {
		if !IsAudioArchitecture(arch) {
			t.Fatalf("%q should be an audio architecture", arch)
		}
	}
	for _, arch := range []string{"roberta", "bert", "", "lstm"} {
		if IsAudioArchitecture(arch) {
			t.Fatalf("%q should not be an audio architecture", arch)
		}
	}
}
