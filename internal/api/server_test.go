package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/emotive/internal/emotion"
	"github.com/samcharles93/emotive/internal/tokenizer"
	"github.com/samcharles93/emotive/internal/vocab"
)

func newTestEcho(scores []float32) *echo.Echo {
	backend := emotion.InferencerFunc(func(ctx context.Context, seq []int32) ([]float32, error) {
		return scores, nil
	})
	tok := tokenizer.New(vocab.Default(), tokenizer.DefaultMaxLength)
	classifier := emotion.NewClassifier(tok, backend, emotion.DefaultTextLabels, "test-model")

	e := echo.New()
	NewServer(classifier, nil).Register(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestClassifyEndpoint(t *testing.T) {
	t.Parallel()

	e := newTestEcho([]float32{0.05, 0.02, 0.01, 0.85, 0.05, 0.02})
	rec := doJSON(t, e, http.MethodPost, "/v1/emotion", `{"text":"I am happy"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp EmotionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.ID, "req_") {
		t.Fatalf("request id: got %q", resp.ID)
	}
	if !resp.Success {
		t.Fatalf("expected success: %s", rec.Body.String())
	}
	if resp.Emotion != "happy" {
		t.Fatalf("emotion: got %q want happy", resp.Emotion)
	}
	if resp.Model != "test-model" {
		t.Fatalf("model: got %q", resp.Model)
	}
	if resp.TokensUsed != 3 {
		t.Fatalf("tokens used: got %d want 3", resp.TokensUsed)
	}
}

func TestClassifyEndpointLabelsOverride(t *testing.T) {
	t.Parallel()

	e := newTestEcho([]float32{0.9, 0.05, 0.02, 0.01, 0.01, 0.01})
	body := `{"text":"so mad right now","labels":["furious","disgust","fear","happy","neutral","sad"]}`
	rec := doJSON(t, e, http.MethodPost, "/v1/emotion", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp EmotionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Emotion != "furious" {
		t.Fatalf("emotion: got %q want furious", resp.Emotion)
	}
}

func TestClassifyEndpointEmptyText(t *testing.T) {
	t.Parallel()

	e := newTestEcho([]float32{1, 0, 0, 0, 0, 0})
	rec := doJSON(t, e, http.MethodPost, "/v1/emotion", `{"text":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400 body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Fatalf("failure shape missing: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "empty text") {
		t.Fatalf("error message missing: %s", rec.Body.String())
	}
}

func TestClassifyEndpointLabelMismatch(t *testing.T) {
	t.Parallel()

	e := newTestEcho([]float32{0.5, 0.5, 0, 0, 0, 0})
	rec := doJSON(t, e, http.MethodPost, "/v1/emotion", `{"text":"hello","labels":["only","two"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400 body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "doesn't match emotion labels count") {
		t.Fatalf("mismatch message missing: %s", rec.Body.String())
	}
}

func TestClassifyEndpointMalformedBody(t *testing.T) {
	t.Parallel()

	e := newTestEcho([]float32{1, 0, 0, 0, 0, 0})
	rec := doJSON(t, e, http.MethodPost, "/v1/emotion", `{"text":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400 body=%s", rec.Code, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	e := newTestEcho(nil)
	rec := doJSON(t, e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("body: %s", rec.Body.String())
	}
}
