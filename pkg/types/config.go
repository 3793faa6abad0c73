package types

import "time"

// ConvertConfig holds defaults for the convert command, overridable by flags.
type ConvertConfig struct {
	// Prefix is the default filename prefix for renamed files (default "image").
	Prefix string `json:"prefix" yaml:"prefix"`

	// StartNumber is the default starting sequence number (default 1).
	StartNumber int `json:"start_number" yaml:"start_number"`

	// Format is the default output format: png or jpeg (default png).
	Format string `json:"format" yaml:"format"`

	// OutputDir is an optional default output folder.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// ReportPath, when set, writes a YAML result report after each batch.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// ServeConfig holds settings for the local web form shell.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeout is the HTTP read timeout.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the HTTP write timeout.
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Config groups the tool configuration.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Serve   ServeConfig   `json:"serve" yaml:"serve"`
}
