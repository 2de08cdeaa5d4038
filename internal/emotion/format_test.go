package emotion

import (
	"errors"
	"testing"
)

func TestFormatLabelMismatch(t *testing.T) {
	t.Parallel()

	_, err := Format([]float32{0.2, 0.3, 0.5}, []string{"a", "b"})
	var mismatch *LabelMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected LabelMismatchError, got %v", err)
	}
	if mismatch.Outputs != 3 || mismatch.Labels != 2 {
		t.Fatalf("counts: got outputs=%d labels=%d want 3/2", mismatch.Outputs, mismatch.Labels)
	}
	want := "Model output size (3) doesn't match emotion labels count (2). Model expects 3 emotions."
	if got := mismatch.Error(); got != want {
		t.Fatalf("message:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatTieBreakFirstMaxWins(t *testing.T) {
	t.Parallel()

	pred, err := Format([]float32{0.5, 0.5}, []string{"x", "y"})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if pred.Emotion != "x" {
		t.Fatalf("tie-break: got %q want x", pred.Emotion)
	}
	if pred.Confidence != 0.5 {
		t.Fatalf("confidence: got %v want 0.5", pred.Confidence)
	}
}

func TestFormatScoresPreserveLabelsAndValues(t *testing.T) {
	t.Parallel()

	raw := []float32{0.05, 0.02, 0.01, 0.85, 0.05, 0.02}
	labels := []string{"angry", "disgust", "fear", "happy", "neutral", "sad"}
	pred, err := Format(raw, labels)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if pred.Emotion != "happy" {
		t.Fatalf("emotion: got %q want happy", pred.Emotion)
	}
	if pred.Confidence != float64(float32(0.85)) {
		t.Fatalf("confidence: got %v", pred.Confidence)
	}
	if len(pred.Scores) != len(labels) {
		t.Fatalf("scores size: got %d want %d", len(pred.Scores), len(labels))
	}
	for i, label := range labels {
		if pred.Scores[label] != float64(raw[i]) {
			t.Fatalf("score %q: got %v want %v", label, pred.Scores[label], raw[i])
		}
		if pred.Labels[i] != label {
			t.Fatalf("label order at %d: got %q want %q", i, pred.Labels[i], label)
		}
	}
}

func TestFormatNoRenormalization(t *testing.T) {
	t.Parallel()

	// Values outside [0,1] pass through untouched: the formatter trusts
	// the backend's output.
	pred, err := Format([]float32{2.5, -1.0}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if pred.Confidence != 2.5 {
		t.Fatalf("confidence: got %v want 2.5", pred.Confidence)
	}
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()

	if _, err := Format(nil, nil); err == nil {
		t.Fatalf("expected error for empty score vector")
	}
}
