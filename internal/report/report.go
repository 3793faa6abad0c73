// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a structured YAML record of a batch run. Callers that
// want machine-readable outcomes read this file instead of parsing log lines.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/batchpix/pkg/types"
)

// Report is the YAML document written after a batch run.
type Report struct {
	GeneratedAt string             `yaml:"generated_at"`
	Request     types.Request      `yaml:"request"`
	Converted   int                `yaml:"converted"`
	Renamed     int                `yaml:"renamed"`
	Total       int                `yaml:"total"`
	Files       []types.FileResult `yaml:"files"`
}

// Write marshals the batch outcome to path.
func Write(path string, req types.Request, result types.BatchResult) error {
	r := Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Request:     req,
		Converted:   result.Converted,
		Renamed:     result.Renamed,
		Total:       result.Total(),
		Files:       result.Files,
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
