// Package api serves the classification pipeline over HTTP for
// long-lived deployments. The vocabulary and model session are built
// once at startup and shared by every request.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/emotive/internal/emotion"
	"github.com/samcharles93/emotive/internal/logger"
)

// Service is the classification capability the server exposes.
type Service interface {
	ClassifyWithLabels(ctx context.Context, text string, labels []string) (*emotion.Report, error)
}

// Server handles the emotion HTTP API.
type Server struct {
	service Service
	log     logger.Logger
}

// NewServer wires the classification service and a logger.
func NewServer(service Service, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{service: service, log: log}
}

// Register mounts the API routes.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/emotion", s.handleClassify)
	e.GET("/healthz", s.handleHealth)
}

func (s *Server) handleClassify(c *echo.Context) error {
	id := newRequestID()

	req, err := decodeJSON[EmotionRequest](c.Request().Body)
	if err != nil {
		return s.writeFailure(c, id, http.StatusBadRequest, errors.New("request body must be a JSON object with a text field"))
	}

	report, err := s.service.ClassifyWithLabels(c.Request().Context(), req.Text, req.Labels)
	if err != nil {
		return s.writeFailure(c, id, statusFor(err), err)
	}

	return c.JSON(http.StatusOK, EmotionResponse{ID: id, Report: *report})
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeFailure(c *echo.Context, id string, status int, err error) error {
	s.log.Warn("classification failed", "request_id", id, "status", status, "error", err)
	return c.JSON(status, ErrorResponse{ID: id, ErrorReport: emotion.NewErrorReport(err)})
}

// statusFor maps the pipeline error taxonomy onto HTTP statuses: bad
// input is the client's fault, everything else is the deployment's.
func statusFor(err error) int {
	var mismatch *emotion.LabelMismatchError
	switch {
	case errors.Is(err, emotion.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.As(err, &mismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newRequestID() string {
	return "req_" + uuid.NewString()
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
