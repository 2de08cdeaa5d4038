package emotion

import "errors"

// Prediction is a fully formatted classification outcome.
type Prediction struct {
	// Emotion is the label at the first index attaining the maximum
	// score (lowest index wins on ties).
	Emotion string
	// Confidence is that maximum score, reported as the model produced
	// it. No renormalization or clamping happens here: the backend is
	// assumed to emit probabilities already.
	Confidence float64
	// Scores pairs every label with its score.
	Scores map[string]float64
	// Labels preserves the caller-supplied order for ordered rendering.
	Labels []string
}

// Format combines raw model scores with an ordered label list. The two
// must have equal length; a mismatch is a caller contract violation
// reported as LabelMismatchError.
func Format(rawScores []float32, labels []string) (Prediction, error) {
	if len(rawScores) != len(labels) {
		return Prediction{}, &LabelMismatchError{Outputs: len(rawScores), Labels: len(labels)}
	}
	if len(rawScores) == 0 {
		return Prediction{}, errors.New("model produced an empty score vector")
	}

	maxIdx := 0
	for i, s := range rawScores {
		if s > rawScores[maxIdx] {
			maxIdx = i
		}
	}

	scores := make(map[string]float64, len(labels))
	for i, label := range labels {
		scores[label] = float64(rawScores[i])
	}

	return Prediction{
		Emotion:    labels[maxIdx],
		Confidence: float64(rawScores[maxIdx]),
		Scores:     scores,
		Labels:     append([]string(nil), labels...),
	}, nil
}
