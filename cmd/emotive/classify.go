package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/emotive/internal/emotion"
	"github.com/samcharles93/emotive/internal/logger"
	"github.com/samcharles93/emotive/internal/tokenizer"
)

func classifyCmd() *cli.Command {
	var (
		modelPath string
		text      string
		labels    string
		vocabPath string
		onnxLib   string
		maxLength int64
		logLevel  string
	)

	return &cli.Command{
		Name:      "classify",
		Usage:     "Classify the emotion of a text and print the result as JSON",
		ArgsUsage: "[text]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "model",
				Usage:       "path to the ONNX emotion model",
				Destination: &modelPath,
			},
			&cli.StringFlag{
				Name:        "text",
				Usage:       "text to classify (alternatively the first positional argument)",
				Destination: &text,
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
				Value:       "warn",
				Destination: &logLevel,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			applyPipelineConfig(cmd, cfg, &modelPath, &vocabPath, &onnxLib, &labels, &maxLength, &logLevel)

			log := logger.Text(os.Stderr, logger.ParseLevel(logLevel))

			if text == "" {
				text = cmd.Args().First()
			}
			// Same up-front check the pipeline repeats: don't load a model
			// for a request that can only fail.
			if isBlank(text) {
				return failJSON(emotion.ErrEmptyText)
			}

			classifier, cleanup, err := buildClassifier(pipelineOptions{
				modelPath: modelPath,
				vocabPath: vocabPath,
				onnxLib:   onnxLib,
				labels:    labels,
				maxLength: maxLength,
			}, log)
			if err != nil {
				return failJSON(err)
			}
			defer cleanup()

			report, err := classifier.Classify(ctx, text)
			if err != nil {
				return failJSON(err)
			}
			return emitJSON(report)
		},
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// emitJSON writes exactly one JSON object to stdout. Everything else
// the process prints goes to stderr.
func emitJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

// failJSON converts any pipeline error into the failure JSON shape on
// stdout and a non-zero exit status.
func failJSON(err error) error {
	_ = emitJSON(emotion.NewErrorReport(err))
	return cli.Exit(err.Error(), 1)
}
