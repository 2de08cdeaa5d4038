package ort

import (
	"fmt"

	onnxruntime "github.com/yalue/onnxruntime_go"
)

// TensorInfo describes one graph input or output.
type TensorInfo struct {
	Name     string `json:"name"`
	Shape    string `json:"shape"`
	DataType string `json:"data_type"`
}

// ModelInfo is the inspection report for an ONNX model file.
type ModelInfo struct {
	Path         string            `json:"path"`
	Inputs       []TensorInfo      `json:"inputs"`
	Outputs      []TensorInfo      `json:"outputs"`
	ProducerName string            `json:"producer_name,omitempty"`
	GraphName    string            `json:"graph_name,omitempty"`
	Domain       string            `json:"domain,omitempty"`
	Description  string            `json:"description,omitempty"`
	Version      int64             `json:"version,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Inspect reads a model's graph signature and embedded metadata without
// creating an inference session. The runtime environment must already
// be initialized.
func Inspect(modelPath string) (*ModelInfo, error) {
	inputs, outputs, err := onnxruntime.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("read graph info: %w", err)
	}

	info := &ModelInfo{
		Path:    modelPath,
		Inputs:  tensorInfos(inputs),
		Outputs: tensorInfos(outputs),
	}

	meta, err := onnxruntime.GetModelMetadata(modelPath)
	if err != nil {
		// Graph info alone is still useful; metadata is best-effort.
		return info, nil
	}
	defer meta.Destroy()

	info.ProducerName, _ = meta.GetProducerName()
	info.GraphName, _ = meta.GetGraphName()
	info.Domain, _ = meta.GetDomain()
	info.Description, _ = meta.GetDescription()
	info.Version, _ = meta.GetVersion()

	if keys, err := meta.GetCustomMetadataMapKeys(); err == nil && len(keys) > 0 {
		info.Metadata = make(map[string]string, len(keys))
		for _, k := range keys {
			if v, _, err := meta.LookupCustomMetadataMap(k); err == nil {
				info.Metadata[k] = v
			}
		}
	}
	return info, nil
}

func tensorInfos(infos []onnxruntime.InputOutputInfo) []TensorInfo {
	out := make([]TensorInfo, len(infos))
	for i, in := range infos {
		out[i] = TensorInfo{
			Name:     in.Name,
			Shape:    in.Dimensions.String(),
			DataType: in.DataType.String(),
		}
	}
	return out
}
