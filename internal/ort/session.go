package ort

import (
	"context"
	"fmt"

	onnxruntime "github.com/yalue/onnxruntime_go"

	"github.com/samcharles93/emotive/internal/emotion"
)

// Session drives one loaded ONNX classification model. The emotion
// model takes a single int32 sequence tensor of shape [1, max_length]
// and produces a single float32 class-probability vector.
type Session struct {
	session    *onnxruntime.DynamicAdvancedSession
	inputName  string
	outputName string
}

var _ emotion.Inferencer = (*Session)(nil)

// NewSession opens the model at modelPath. The runtime environment must
// already be initialized via Init. Input and output names are read from
// the model graph, so exported models keep working regardless of what
// the training pipeline called them.
func NewSession(modelPath string) (*Session, error) {
	inputs, outputs, err := onnxruntime.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, &emotion.ConfigurationError{
			Reason: fmt.Sprintf("failed to read model graph from %s", modelPath),
			Err:    err,
		}
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, &emotion.ConfigurationError{
			Reason: fmt.Sprintf("model %s declares no inputs or outputs", modelPath),
		}
	}

	session, err := onnxruntime.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		nil,
	)
	if err != nil {
		return nil, &emotion.ConfigurationError{
			Reason: fmt.Sprintf("failed to load ONNX model %s", modelPath),
			Err:    err,
		}
	}

	return &Session{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
	}, nil
}

// Infer runs the model over one encoded sequence and returns the raw
// class scores. The output tensor is copied out before being released,
// so the returned slice stays valid.
func (s *Session) Infer(ctx context.Context, seq []int32) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, int64(len(seq))), seq)
	if err != nil {
		return nil, fmt.Errorf("build input tensor: %w", err)
	}
	defer input.Destroy()

	outputs := []onnxruntime.Value{nil}
	if err := s.session.Run([]onnxruntime.Value{input}, outputs); err != nil {
		return nil, fmt.Errorf("run session: %w", err)
	}
	defer outputs[0].Destroy()

	tensor, ok := outputs[0].(*onnxruntime.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("model output %s is not a float32 tensor", s.outputName)
	}
	return append([]float32(nil), tensor.GetData()...), nil
}

// Close releases the underlying session.
func (s *Session) Close() error {
	return s.session.Destroy()
}
