// Package ort adapts ONNX Runtime (via the onnxruntime_go bindings) to
// the pipeline's Inferencer boundary, and exposes model inspection for
// the diagnostic tool.
package ort

import (
	"os"

	onnxruntime "github.com/yalue/onnxruntime_go"

	"github.com/samcharles93/emotive/internal/emotion"
)

// EnvLibraryPath overrides the ONNX Runtime shared library location
// when no explicit path is configured.
const EnvLibraryPath = "ONNXRUNTIME_SHARED_LIBRARY_PATH"

// Init prepares the ONNX Runtime environment. libraryPath points at the
// onnxruntime shared library; when empty, the EnvLibraryPath variable
// and then the bindings' platform default are used. Safe to call more
// than once.
func Init(libraryPath string) error {
	if onnxruntime.IsInitialized() {
		return nil
	}
	if libraryPath == "" {
		libraryPath = os.Getenv(EnvLibraryPath)
	}
	if libraryPath != "" {
		onnxruntime.SetSharedLibraryPath(libraryPath)
	}
	if err := onnxruntime.InitializeEnvironment(); err != nil {
		return &emotion.ConfigurationError{
			Reason: "onnxruntime shared library not available",
			Err:    err,
		}
	}
	return nil
}

// Destroy tears down the runtime environment. Call once per process
// after every session is closed.
func Destroy() error {
	if !onnxruntime.IsInitialized() {
		return nil
	}
	return onnxruntime.DestroyEnvironment()
}
