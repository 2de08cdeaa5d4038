package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/emotive/internal/api"
	"github.com/samcharles93/emotive/internal/logger"
	"github.com/samcharles93/emotive/internal/tokenizer"
)

func serveCmd() *cli.Command {
	var (
		modelPath   string
		labels      string
		vocabPath   string
		onnxLib     string
		maxLength   int64
		logLevel    string
		addr        string
		readTimeout time.Duration
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the emotion classification HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "model",
				Usage:       "path to the ONNX emotion model",
				Destination: &modelPath,
			},
			&cli.StringFlag{
				Name:        "labels",
				Usage:       "comma-separated emotion labels in model output order",
				Destination: &labels,
			},
			&cli.StringFlag{
				Name:        "vocab",
				Usage:       "path to the training vocabulary (vocab.json or line-per-token text)",
				Destination: &vocabPath,
			},
			&cli.StringFlag{
				Name:        "onnx-lib",
				Usage:       "path to the onnxruntime shared library",
				Destination: &onnxLib,
			},
			&cli.Int64Flag{
				Name:        "max-length",
				Usage:       "token sequence length the model expects",
				Value:       tokenizer.DefaultMaxLength,
				Destination: &maxLength,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "stderr log level (debug, info, warn, error)",
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			applyPipelineConfig(cmd, cfg, &modelPath, &vocabPath, &onnxLib, &labels, &maxLength, &logLevel)
			if cfg.ServerAddress != "" && !cmd.IsSet("addr") {
				addr = cfg.ServerAddress
			}

			log := logger.Text(os.Stderr, logger.ParseLevel(logLevel))

			classifier, cleanup, err := buildClassifier(pipelineOptions{
				modelPath: modelPath,
				vocabPath: vocabPath,
				onnxLib:   onnxLib,
				labels:    labels,
				maxLength: maxLength,
			}, log)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer cleanup()

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			api.NewServer(classifier, log).Register(e)

			log.Info("starting server", "address", addr, "labels", classifier.Labels())
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
