package emotion

import (
	"errors"
	"fmt"
)

// Every failure in the pipeline falls into one of these categories.
// Nothing retries: a failed classification is terminal for that
// invocation, and callers convert any of these into the failure JSON
// shape.
var (
	// ErrInvalidInput covers blank text and malformed argument lists.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyText rejects blank or whitespace-only raw text before
	// tokenization.
	ErrEmptyText = fmt.Errorf("%w: empty text provided", ErrInvalidInput)
)

// ConfigurationError reports a missing or unusable runtime dependency,
// such as the ONNX Runtime shared library or the model file itself.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// LabelMismatchError reports that the model's output dimensionality
// disagrees with the supplied label list. Supplying a matching label
// list is a caller contract; the formatter cannot repair it.
type LabelMismatchError struct {
	Outputs int
	Labels  int
}

func (e *LabelMismatchError) Error() string {
	return fmt.Sprintf("Model output size (%d) doesn't match emotion labels count (%d). Model expects %d emotions.",
		e.Outputs, e.Labels, e.Outputs)
}

// InferenceError wraps a failure raised by the inference backend. It is
// fatal for the current request only.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("Prediction failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// UnsupportedModelTypeError reports that the model identifier resolved
// to an architecture the pipeline cannot drive, e.g. an audio model
// handed to the text classifier.
type UnsupportedModelTypeError struct {
	ModelType string
}

func (e *UnsupportedModelTypeError) Error() string {
	return fmt.Sprintf("model is a %q model, which this text emotion pipeline cannot run", e.ModelType)
}
