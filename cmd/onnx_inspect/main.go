// onnx_inspect prints the graph signature and embedded metadata of an
// ONNX model file. Useful for checking what shape and labels a trained
// emotion model actually expects before wiring it into the pipeline.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/samcharles93/emotive/internal/ort"
)

func main() {
	var (
		onnxLib = flag.String("onnx-lib", "", "path to the onnxruntime shared library")
		asJSON  = flag.Bool("json", false, "print the report as JSON")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: onnx_inspect [--onnx-lib PATH] [--json] <model.onnx>")
		os.Exit(2)
	}

	if err := ort.Init(*onnxLib); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer ort.Destroy()

	info, err := ort.Inspect(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if *asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("File: %s\n", info.Path)
	if info.GraphName != "" {
		fmt.Printf("graph=%s producer=%s version=%d\n", info.GraphName, info.ProducerName, info.Version)
	}
	if info.Domain != "" {
		fmt.Printf("domain=%s\n", info.Domain)
	}
	if info.Description != "" {
		fmt.Printf("description=%s\n", info.Description)
	}

	fmt.Println()
	fmt.Println("Inputs:")
	for _, in := range info.Inputs {
		fmt.Printf("  %-30s %-10s shape=%s\n", in.Name, in.DataType, in.Shape)
	}
	fmt.Println("Outputs:")
	for _, out := range info.Outputs {
		fmt.Printf("  %-30s %-10s shape=%s\n", out.Name, out.DataType, out.Shape)
	}

	if len(info.Metadata) > 0 {
		fmt.Println()
		fmt.Println("Metadata:")
		keys := make([]string, 0, len(info.Metadata))
		for k := range info.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s = %s\n", k, info.Metadata[k])
		}
	}
}
