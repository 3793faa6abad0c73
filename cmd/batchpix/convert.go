// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/batchpix/internal/converter"
	"github.com/pdiddy/batchpix/internal/report"
	"github.com/pdiddy/batchpix/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <folder>",
	Short: "Convert the images in a folder, with optional sequential renaming",
	Long: `Convert processes every supported image directly inside the given folder
(no recursion) and writes PNG or JPEG copies, either in place or into an
output folder. With renaming enabled the outputs get zero-padded sequential
names, continuing past any numbered files already present.

Per-file problems are logged and skipped; the batch never aborts on one bad
file. Original files are kept unless --overwrite is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output folder (default: convert in place)")
	convertCmd.Flags().StringP("prefix", "p", "", "prefix for renamed files (default: image)")
	convertCmd.Flags().IntP("start", "s", 1, "starting number for sequential naming")
	convertCmd.Flags().BoolP("rename", "r", true, "rename files with sequential numbers")
	convertCmd.Flags().Bool("no-rename", false, "keep original filenames (just convert format)")
	convertCmd.Flags().Bool("overwrite", false, "delete original files after conversion")
	convertCmd.Flags().String("format", "", "output format: png or jpeg (default: png)")
	convertCmd.Flags().String("report", "", "write a YAML result report to this path")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	prefix, _ := flags.GetString("prefix")
	if prefix == "" {
		prefix = viper.GetString("convert.prefix")
	}

	start, _ := flags.GetInt("start")
	if !flags.Changed("start") {
		start = viper.GetInt("convert.start_number")
	}

	formatName, _ := flags.GetString("format")
	if formatName == "" {
		formatName = viper.GetString("convert.format")
	}
	format, err := types.ParseFormat(formatName)
	if err != nil {
		return err
	}

	output, _ := flags.GetString("output")
	if output == "" {
		output = viper.GetString("convert.output_dir")
	}

	rename, _ := flags.GetBool("rename")
	if noRename, _ := flags.GetBool("no-rename"); noRename {
		rename = false
	}
	overwrite, _ := flags.GetBool("overwrite")

	req := types.Request{
		InputDir:        args[0],
		OutputDir:       output,
		Prefix:          prefix,
		StartNumber:     start,
		Rename:          rename,
		DeleteOriginals: overwrite,
		Format:          format,
		Ext:             format.Ext(),
	}
	if err := req.Validate(); err != nil {
		return err
	}

	// Prompt for overwrites only on a terminal; piped or scripted runs
	// resolve conflicts by skipping.
	var policy converter.ConflictPolicy = converter.SkipPolicy{}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		policy = newPromptPolicy(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	result := converter.Run(req, converter.NewWriterSink(cmd.OutOrStdout()), policy)

	reportPath, _ := flags.GetString("report")
	if reportPath == "" {
		reportPath = viper.GetString("convert.report_path")
	}
	if reportPath != "" {
		if err := report.Write(reportPath, req, result); err != nil {
			return err
		}
	}
	return nil
}
