package emotion

import "strconv"

// DefaultTextLabels are the six classes the BiLSTM text model was
// trained on. Note there is no "surprise" class.
var DefaultTextLabels = []string{"angry", "disgust", "fear", "happy", "neutral", "sad"}

// DefaultAudioLabels is the eight-class table most speech emotion
// models share, kept as the fallback for id2label resolution.
var DefaultAudioLabels = []string{"angry", "calm", "disgust", "fear", "happy", "neutral", "sad", "surprise"}

// ResolveLabels turns model-supplied id2label metadata (decimal index
// strings mapped to label names) into an ordered label list. On any
// absent or malformed shape it falls back to defaults; it is a pure
// function of its two arguments.
func ResolveLabels(id2label map[string]string, defaults []string) []string {
	if len(id2label) == 0 {
		return defaults
	}
	out := make([]string, len(id2label))
	for k, label := range id2label {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(out) || label == "" {
			return defaults
		}
		if out[i] != "" {
			return defaults
		}
		out[i] = label
	}
	return out
}
