// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/batchpix/internal/converter"
	"github.com/pdiddy/batchpix/pkg/types"
)

// promptPolicy asks on the terminal whether to overwrite an existing output
// file. Answering "A" applies to the rest of the batch.
type promptPolicy struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptPolicy(in io.Reader, out io.Writer) *promptPolicy {
	return &promptPolicy{in: bufio.NewReader(in), out: out}
}

// Resolve implements converter.ConflictPolicy. An empty answer means yes;
// EOF on stdin resolves to skip so a closed pipe cannot loop forever.
func (p *promptPolicy) Resolve(source, output string) converter.Decision {
	name := filepath.Base(output)
	for {
		fmt.Fprintf(p.out, "File %s already exists. Overwrite? (Y/n/A for all): ", name)
		line, err := p.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch {
		case err != nil && answer == "":
			return converter.DecisionSkip
		case answer == "" || answer == "y" || answer == "yes":
			return converter.DecisionOverwrite
		case answer == "n" || answer == "no":
			return converter.DecisionSkip
		case answer == "a":
			return converter.DecisionOverwriteAll
		}
	}
}

// runWizard walks through the same questions as the original interactive
// shell: folder, format, renaming, output location, and numbering.
func runWizard(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	fmt.Fprintln(out, "Batch Image Converter and Renamer")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	folder := ask(r, out, "Enter the path to the folder containing images to convert (press Enter for current directory): ")
	if folder == "" {
		folder = "."
	}
	folder = strings.Trim(folder, `"'`)

	fmt.Fprintln(out, "\nChoose output format:")
	fmt.Fprintln(out, "1. PNG (preserve transparency, default)")
	fmt.Fprintln(out, "2. JPEG (smaller, no transparency)")
	format := types.FormatPNG
	if ask(r, out, "Convert to (1=PNG, 2=JPEG)? [1]: ") == "2" {
		format = types.FormatJPEG
	}

	fmt.Fprintln(out, "\nRenaming options:")
	fmt.Fprintf(out, "1. Rename files with sequential numbers (image_001%s etc.)\n", format.Ext())
	fmt.Fprintln(out, "2. Keep original filenames (just convert format)")
	rename := ask(r, out, "Choose option (1 or 2): ") != "2"

	fmt.Fprintln(out, "\nOutput options:")
	fmt.Fprintln(out, "1. Convert in place (same folder as the originals)")
	fmt.Fprintln(out, "2. Create a 'converted' folder in the current directory")
	fmt.Fprintln(out, "3. Specify custom output folder")

	var output string
	deleteOriginals := false
	switch ask(r, out, "Choose option (1, 2, or 3): ") {
	case "1":
		answer := strings.ToLower(ask(r, out, "Delete original files after conversion? (y/n): "))
		deleteOriginals = answer == "y" || answer == "yes"
	case "2":
		output = "converted"
	case "3":
		output = strings.Trim(ask(r, out, "Enter the path where converted images should be saved (press Enter for default location): "), `"'`)
	}

	prefix := "image"
	start := 1
	if rename {
		if custom := ask(r, out, "Enter filename prefix (default: 'image'): "); custom != "" {
			prefix = custom
		}
		if raw := ask(r, out, "Enter starting number (default: 1): "); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				fmt.Fprintln(out, "Invalid number, using default: 1")
			} else {
				start = n
			}
		}
	}

	req := types.Request{
		InputDir:        folder,
		OutputDir:       output,
		Prefix:          prefix,
		StartNumber:     start,
		Rename:          rename,
		DeleteOriginals: deleteOriginals,
		Format:          format,
		Ext:             format.Ext(),
	}
	if err := req.Validate(); err != nil {
		return err
	}

	converter.Run(req, converter.NewWriterSink(out), newPromptPolicy(r, out))
	return nil
}

// ask prints a prompt and returns the trimmed answer line.
func ask(r *bufio.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
