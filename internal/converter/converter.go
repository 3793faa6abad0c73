// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package converter implements the batch image conversion and renaming engine.
//
// The engine processes the direct children of one input folder, strictly one
// file at a time, in lexicographic path order. Each supported image is
// re-encoded in the requested format (PNG or JPEG), optionally under a
// sequential numbered name, and progress is reported through a caller-supplied
// log sink. Per-file failures never abort the batch.
package converter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/batchpix/pkg/types"
)

// Sink receives human-readable progress lines from a running batch.
type Sink interface {
	Log(line string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(string)

// Log calls f with the line.
func (f SinkFunc) Log(line string) { f(line) }

// NewWriterSink returns a Sink that writes one line per event to w.
func NewWriterSink(w io.Writer) Sink {
	return SinkFunc(func(line string) { fmt.Fprintln(w, line) })
}

// Decision is a conflict policy's answer for one existing output file.
type Decision int

const (
	// DecisionSkip leaves the existing output untouched.
	DecisionSkip Decision = iota
	// DecisionOverwrite replaces the existing output.
	DecisionOverwrite
	// DecisionOverwriteAll replaces this output and every later conflict
	// in the same batch without asking again.
	DecisionOverwriteAll
)

// ConflictPolicy resolves what to do when a candidate output path already
// exists and originals are being kept. The CLI installs a prompting policy
// when attached to a terminal; non-interactive callers use SkipPolicy so the
// engine never blocks waiting for input.
type ConflictPolicy interface {
	Resolve(source, output string) Decision
}

// SkipPolicy declines every overwrite.
type SkipPolicy struct{}

// Resolve always returns DecisionSkip.
func (SkipPolicy) Resolve(string, string) Decision { return DecisionSkip }

// OverwritePolicy accepts every overwrite.
type OverwritePolicy struct{}

// Resolve always returns DecisionOverwrite.
func (OverwritePolicy) Resolve(string, string) Decision { return DecisionOverwrite }

// Run executes one batch conversion described by req and returns the
// per-file results alongside the two summary tallies.
//
// Progress lines go to sink (standard output when nil); policy resolves
// overwrite conflicts in non-renaming mode (SkipPolicy when nil). Run fails
// soft: per-file errors are logged and recorded, and the only terminal
// conditions are a missing input folder and a folder with no supported
// files. Neither raises an error; Run simply logs and returns.
func Run(req types.Request, sink Sink, policy ConflictPolicy) types.BatchResult {
	if sink == nil {
		sink = NewWriterSink(os.Stdout)
	}
	if policy == nil {
		policy = SkipPolicy{}
	}

	r := &runner{req: req, sink: sink, policy: policy}

	if _, err := os.Stat(req.InputDir); err != nil {
		r.logf("Error: Folder '%s' does not exist.", req.InputDir)
		return r.result
	}

	r.outDir = req.InputDir
	if !req.InPlace() {
		r.outDir = req.OutputDir
		if err := os.MkdirAll(r.outDir, 0o755); err != nil {
			r.logf("Error: could not create output folder '%s': %v", r.outDir, err)
			return r.result
		}
	}

	files, err := discover(req.InputDir)
	if err != nil {
		r.logf("Error: could not read folder '%s': %v", req.InputDir, err)
		return r.result
	}
	if len(files) == 0 {
		r.logf("No supported image files found in the folder.")
		return r.result
	}
	r.logf("Found %d image files to process.", len(files))

	r.counter = req.StartNumber
	if req.Rename {
		r.counter = inferStart(r.outDir, req.Prefix, req.Ext, req.StartNumber)
	}

	for _, src := range files {
		r.processFile(src)
	}

	r.logf("")
	r.logf("Processing complete!")
	r.logf("WebP files converted: %d", r.result.Converted)
	r.logf("Other files renamed: %d", r.result.Renamed)
	r.logf("Total files processed: %d", r.result.Total())
	return r.result
}

// runner holds the mutable state of one batch: the sequence counter, the
// accept-all-overwrites flag, and the accumulating result. All of it is
// owned by the single processing loop.
type runner struct {
	req    types.Request
	sink   Sink
	policy ConflictPolicy

	outDir    string
	counter   int
	acceptAll bool
	result    types.BatchResult
}

func (r *runner) logf(format string, args ...any) {
	r.sink.Log(fmt.Sprintf(format, args...))
}

func (r *runner) record(src, out string, outcome types.Outcome, err error) {
	fr := types.FileResult{Source: src, Output: out, Outcome: outcome}
	if err != nil {
		fr.Error = err.Error()
	}
	r.result.Files = append(r.result.Files, fr)
}

// processFile handles one input file: candidate name, conflict resolution,
// decode, flatten, save, classification, and the deletion policy. The
// sequence counter advances exactly once per call when renaming is enabled,
// on success, skip, and failure alike, so failed slots leave a permanent gap.
func (r *runner) processFile(src string) {
	base := filepath.Base(src)

	var name string
	if r.req.Rename {
		name = fmt.Sprintf("%s_%03d%s", r.req.Prefix, r.counter, r.req.Ext)
	} else {
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		name = stem + r.req.Ext
	}
	out := filepath.Join(r.outDir, name)

	if _, err := os.Stat(out); err == nil && !r.req.DeleteOriginals {
		if r.req.Rename {
			r.logf("Skipping %s - output file %s already exists", base, name)
			r.record(src, out, types.OutcomeSkippedExists, nil)
			r.counter++
			return
		}
		if !r.acceptAll {
			switch r.policy.Resolve(src, out) {
			case DecisionOverwriteAll:
				r.acceptAll = true
			case DecisionSkip:
				r.logf("Skipping %s - output file %s already exists", base, name)
				r.record(src, out, types.OutcomeSkippedDeclined, nil)
				return
			}
		}
	}

	if err := r.convertFile(src, out); err != nil {
		r.logf("Error processing %s: %v", base, err)
		r.record(src, out, types.OutcomeFailed, err)
		if r.req.Rename {
			r.counter++
		}
		return
	}

	r.logf("Converted: %s → %s", base, name)

	if strings.EqualFold(filepath.Ext(base), ".webp") {
		r.result.Converted++
		r.record(src, out, types.OutcomeConverted, nil)
	} else {
		r.result.Renamed++
		r.record(src, out, types.OutcomeRenamed, nil)
	}

	// Never delete a source that is itself the just-written output file.
	if r.req.DeleteOriginals && (!r.req.InPlace() || base != name) {
		if err := os.Remove(src); err != nil {
			r.logf("Warning: Could not delete original file %s: %v", base, err)
		}
	}

	if r.req.Rename {
		r.counter++
	}
}

// convertFile decodes src and writes it to out in the requested format.
// The image handle is scoped to this call: decoded, encoded, and released
// before the next file begins.
func (r *runner) convertFile(src, out string) error {
	img, err := loadImage(src)
	if err != nil {
		return err
	}
	return saveImage(img, out, r.req.Format)
}
