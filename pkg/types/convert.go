// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// OutputFormat selects the target encoding for a batch conversion.
type OutputFormat string

const (
	FormatPNG  OutputFormat = "PNG"
	FormatJPEG OutputFormat = "JPEG"
)

// Ext returns the output file extension matching the format.
func (f OutputFormat) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// ParseFormat maps a user-supplied format name to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unknown output format %q: use png or jpeg", s)
	}
}

// Request describes one batch conversion invocation. It is built once by a
// shell (CLI, wizard, or web form) and is not modified while the batch runs.
type Request struct {
	// InputDir is the folder whose direct children are processed.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is where converted files are written. Empty means in-place
	// mode: outputs land next to the inputs.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Prefix is the filename prefix used when renaming (e.g. "image").
	Prefix string `json:"prefix" yaml:"prefix"`

	// StartNumber is the requested first sequence number. The engine may
	// raise it to continue an existing numbered sequence in the output folder.
	StartNumber int `json:"start_number" yaml:"start_number"`

	// Rename selects sequential numbered names over original names.
	Rename bool `json:"rename" yaml:"rename"`

	// DeleteOriginals deletes each source file after a successful conversion,
	// unless the source file is itself the just-written output.
	DeleteOriginals bool `json:"delete_originals" yaml:"delete_originals"`

	// Format is the target encoding, PNG or JPEG.
	Format OutputFormat `json:"format" yaml:"format"`

	// Ext is the output extension and must match Format (".png" or ".jpg").
	Ext string `json:"ext" yaml:"ext"`
}

// InPlace reports whether outputs are written into the input folder.
func (r Request) InPlace() bool {
	return r.OutputDir == ""
}

// Validate checks the request invariants before a batch starts.
func (r Request) Validate() error {
	if r.InputDir == "" {
		return fmt.Errorf("input folder required")
	}
	switch r.Format {
	case FormatPNG:
		if r.Ext != ".png" {
			return fmt.Errorf("output extension %q does not match format PNG", r.Ext)
		}
	case FormatJPEG:
		if r.Ext != ".jpg" {
			return fmt.Errorf("output extension %q does not match format JPEG", r.Ext)
		}
	default:
		return fmt.Errorf("unknown output format %q", r.Format)
	}
	return nil
}

// Outcome classifies the result of processing one input file.
type Outcome string

const (
	// OutcomeConverted marks a WebP source successfully written out.
	OutcomeConverted Outcome = "converted"
	// OutcomeRenamed marks a non-WebP source successfully written out.
	OutcomeRenamed Outcome = "renamed"
	// OutcomeSkippedExists marks a file skipped because the output already
	// existed (renaming mode, or a non-interactive caller).
	OutcomeSkippedExists Outcome = "skipped_exists"
	// OutcomeSkippedDeclined marks a file skipped because the caller declined
	// to overwrite an existing output.
	OutcomeSkippedDeclined Outcome = "skipped_declined"
	// OutcomeFailed marks a file that could not be read, converted, or written.
	OutcomeFailed Outcome = "failed"
)

// FileResult records what happened to one input file.
type FileResult struct {
	// Source is the input file path.
	Source string `json:"source" yaml:"source"`

	// Output is the candidate output path, when one was computed.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Outcome classifies the result.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Error holds the failure cause for OutcomeFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchResult aggregates the outcome of one batch run.
type BatchResult struct {
	// Converted counts successfully processed WebP sources.
	Converted int `json:"converted" yaml:"converted"`

	// Renamed counts successfully processed non-WebP sources.
	Renamed int `json:"renamed" yaml:"renamed"`

	// Files holds the per-file results in processing order.
	Files []FileResult `json:"files" yaml:"files"`
}

// Total returns the number of files successfully processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Renamed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	for _, f := range r.Files {
		if f.Outcome == OutcomeFailed {
			return true
		}
	}
	return false
}
