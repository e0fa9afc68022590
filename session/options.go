package session

import (
	"io"
	"log/slog"

	"golang.org/x/text/encoding"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/generated"
)

// sessionOptions holds configuration for a Session.
type sessionOptions struct {
	fs       fs.Filesystem
	detector generated.Detector
	encoding encoding.Encoding
	tool     string
	info     io.Writer
	err      io.Writer
	logger   *slog.Logger
}

// Option is a functional option for configuring a Session.
type Option func(*sessionOptions)

// WithFilesystem sets the storage the session reads and writes through.
func WithFilesystem(filesystem fs.Filesystem) Option {
	return func(opts *sessionOptions) {
		opts.fs = filesystem
	}
}

// WithDetector sets the generated-by detector used to reject tool output as input.
// If detector is nil, a header detector over the session filesystem is used.
func WithDetector(detector generated.Detector) Option {
	return func(opts *sessionOptions) {
		opts.detector = detector
	}
}

// WithEncoding sets the character encoding of the input and output files.
// If enc is nil, textenc.Default is used.
func WithEncoding(enc encoding.Encoding) Option {
	return func(opts *sessionOptions) {
		opts.encoding = enc
	}
}

// WithToolName sets the tool signature checked by the detector.
func WithToolName(tool string) Option {
	return func(opts *sessionOptions) {
		opts.tool = tool
	}
}

// WithInfoSink sets the channel for informational messages.
func WithInfoSink(w io.Writer) Option {
	return func(opts *sessionOptions) {
		opts.info = w
	}
}

// WithErrorSink sets the channel for error messages.
func WithErrorSink(w io.Writer) Option {
	return func(opts *sessionOptions) {
		opts.err = w
	}
}

// WithLogger configures the session with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *sessionOptions) {
		opts.logger = logger
	}
}

func applyOptions(opts *sessionOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
