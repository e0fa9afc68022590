// Package session manages the input/output file pair of one generator run.
//
// A Session validates and opens the input grammar, derives and opens the
// output file, offers buffered writing to it and releases every held handle
// in CloseAll. All failures are returned as errors from the
// treeio/errors package so callers can branch on their code:
//
//	s := session.New(session.WithLogger(logger))
//	defer s.CloseAll()
//
//	if err := s.SetInput("Calc.jjt"); err != nil {
//	    return err
//	}
//	if err := s.SetOutput("out", ""); err != nil {
//	    return err
//	}
//	return s.Println("PARSER_BEGIN(Calc)")
//
// A Session is not safe for concurrent use.
package session

import (
	"bufio"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/errors"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs/billy"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/generated"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/textenc"
)

const (
	// DefaultToolName is the signature rejected by the generated-by check.
	DefaultToolName = "JJTree"

	// UninitializedInput is the input file name before SetInput succeeds.
	UninitializedInput = "<uninitialized input>"

	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

var (
	// ErrNoOutput is returned by the write methods before SetOutput succeeds.
	ErrNoOutput = errors.New(errors.CodeInvalidInput, "no output file is open")

	// ErrNoInput is returned by SetOutput before SetInput succeeds.
	ErrNoInput = errors.New(errors.CodeInvalidInput, "no input file has been set")

	// ErrClosed is returned by every operation after CloseAll.
	ErrClosed = errors.New(errors.CodeInvalidInput, "file session is closed")
)

// flusher is implemented by sinks that buffer, such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Session owns the input and output files of one generator invocation.
type Session struct {
	fs       fs.Filesystem
	detector generated.Detector
	encoding encoding.Encoding
	tool     string
	info     io.Writer
	err      io.Writer
	logger   *slog.Logger

	inputPath  string
	outputPath string

	inFile fs.File
	in     *bufio.Reader

	outFile fs.File
	outEnc  *transform.Writer
	out     *bufio.Writer

	state State
}

// New creates an empty session. Without options it uses the native
// filesystem, UTF-8, the JJTree signature and stdout/stderr as sinks.
func New(options ...Option) *Session {
	opts := &sessionOptions{
		tool: DefaultToolName,
		info: os.Stdout,
		err:  os.Stderr,
	}
	applyOptions(opts, options)

	if opts.fs == nil {
		opts.fs = billy.NewBaseOSFS()
	}
	if opts.detector == nil {
		opts.detector = generated.NewHeaderDetector(opts.fs)
	}
	if opts.encoding == nil {
		opts.encoding = textenc.Default
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.DiscardHandler)
	}
	if opts.info == nil {
		opts.info = io.Discard
	}
	if opts.err == nil {
		opts.err = io.Discard
	}

	return &Session{
		fs:        opts.fs,
		detector:  opts.detector,
		encoding:  opts.encoding,
		tool:      opts.tool,
		info:      opts.info,
		err:       opts.err,
		logger:    opts.logger,
		inputPath: UninitializedInput,
		state:     StateEmpty,
	}
}

// InputFileName returns the resolved input path, or UninitializedInput.
func (s *Session) InputFileName() string {
	return s.inputPath
}

// OutputFileName returns the output path, empty until SetOutput succeeds.
func (s *Session) OutputFileName() string {
	return s.outputPath
}

// In returns the decoded input reader, nil until SetInput succeeds.
func (s *Session) In() *bufio.Reader {
	return s.in
}

// Out returns the buffered output writer, nil until SetOutput succeeds.
// Text written to it is encoded with the session encoding.
func (s *Session) Out() *bufio.Writer {
	return s.out
}

// InfoSink returns the channel for informational messages.
func (s *Session) InfoSink() io.Writer {
	return s.info
}

// ErrorSink returns the channel for error messages.
func (s *Session) ErrorSink() io.Writer {
	return s.err
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// SetInput validates path and binds it as the session input.
//
// The checks run in order: the path must exist (CodeNotFound), must not be a
// directory (CodeInvalidInput) and must not carry the tool's generation
// header (CodeAlreadyGenerated). Permission problems yield
// CodePermissionDenied and other I/O failures CodeIOFailure. On success the
// previously bound input, if any, is closed and replaced. On failure the
// session is left unchanged.
func (s *Session) SetInput(path string) error {
	if s.state == StateClosed {
		return ErrClosed
	}
	if s.fs == nil || s.detector == nil || s.encoding == nil {
		return errors.New(errors.CodeInternal, "file session was not created with New")
	}

	abs, err := fs.GetAbs(path)
	if err != nil {
		return errors.Wrap(err, errors.CodeIOFailure, "Can't resolve input file "+path)
	}

	info, err := s.fs.Stat(abs)
	if err != nil {
		return classifyInputError(err, path)
	}
	if info == nil {
		return errors.New(errors.CodeInternal, "no file information for "+path)
	}
	if info.IsDir() {
		return errors.New(errors.CodeInvalidInput, path+" is a directory. Please use a valid file name.")
	}

	isGenerated, err := s.detector.IsGeneratedBy(s.tool, abs)
	if err != nil {
		return classifyInputError(err, path)
	}
	if isGenerated {
		return errors.Newf(errors.CodeAlreadyGenerated,
			"%s was generated by %s.  Cannot run %s again.", path, s.tool, s.tool)
	}

	f, err := s.fs.Open(abs)
	if err != nil {
		return classifyInputError(err, path)
	}

	s.closeInput()
	s.inFile = f
	s.in = bufio.NewReader(transform.NewReader(f, s.encoding.NewDecoder()))
	s.inputPath = abs
	s.state = StateInputReady

	s.logger.Debug("input bound",
		"path", abs,
		"encoding", textenc.Name(s.encoding),
	)
	return nil
}

// SetOutput creates outputDirectory if needed and opens the output file in
// it, truncating any existing content. The file name comes from
// ComputeOutputPath(InputFileName(), override). An empty outputDirectory is
// the working directory. A previously opened output is flushed before the new
// file is opened and closed once it is swapped out. Failures are CodeIOFailure.
func (s *Session) SetOutput(outputDirectory, override string) error {
	switch {
	case s.state == StateClosed:
		return ErrClosed
	case s.in == nil:
		return ErrNoInput
	}

	if outputDirectory == "" {
		outputDirectory = "."
	}
	name := filepath.Join(outputDirectory, ComputeOutputPath(s.inputPath, override))

	if err := s.fs.MkdirAll(outputDirectory, outputDirPerm); err != nil {
		return errors.WrapWithContext(err, errors.CodeIOFailure, "Can't create output file "+name,
			map[string]interface{}{"directory": outputDirectory})
	}

	// Pending bytes of the previous output must reach it before a reopen of
	// the same path truncates it.
	if s.outFile != nil && name == s.outputPath {
		s.closeOutput()
		s.state = StateInputReady
	} else if s.out != nil {
		if err := s.out.Flush(); err != nil {
			s.report("flushing output file", s.outputPath, err)
		}
	}

	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePerm)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeIOFailure, "Can't create output file "+name,
			map[string]interface{}{"path": name})
	}

	s.closeOutput()
	s.outFile = f
	s.outEnc = transform.NewWriter(f, s.encoding.NewEncoder())
	s.out = bufio.NewWriter(s.outEnc)
	s.outputPath = name
	s.state = StateReady

	s.logger.Debug("output opened",
		"path", name,
		"input", s.inputPath,
	)
	return nil
}

// Print writes text to the output.
func (s *Session) Print(text string) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	if _, err := w.WriteString(text); err != nil {
		return s.writeError(err)
	}
	return nil
}

// Println writes text followed by a line terminator.
func (s *Session) Println(text string) error {
	return s.Print(text + "\n")
}

// Newline writes a line terminator.
func (s *Session) Newline() error {
	return s.Print("\n")
}

// Printf writes formatted text to the output.
func (s *Session) Printf(format string, args ...interface{}) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return s.writeError(err)
	}
	return nil
}

// Flush writes buffered output through the encoder to the output file.
// Unencodable text and write failures are CodeIOFailure.
func (s *Session) Flush() error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return s.writeError(err)
	}
	return nil
}

// CloseAll flushes and closes the output, closes the input and flushes the
// sinks. It never fails: problems are reported on the error sink. Calling
// it again has no effect.
func (s *Session) CloseAll() {
	if s.state == StateClosed {
		return
	}

	s.closeOutput()
	s.closeInput()
	for _, sink := range []io.Writer{s.info, s.err} {
		if f, ok := sink.(flusher); ok {
			if err := f.Flush(); err != nil {
				s.logger.Warn("flushing sink failed", "error", err)
			}
		}
	}

	s.state = StateClosed
	s.logger.Debug("session closed", "input", s.inputPath, "output", s.outputPath)
}

func (s *Session) writer() (*bufio.Writer, error) {
	switch {
	case s.state == StateClosed:
		return nil, ErrClosed
	case s.out == nil:
		return nil, ErrNoOutput
	}
	return s.out, nil
}

func (s *Session) writeError(err error) error {
	return errors.WrapWithContext(err, errors.CodeIOFailure, "Can't write output file "+s.outputPath,
		map[string]interface{}{"path": s.outputPath})
}

// closeOutput flushes the buffer, then the encoder, then closes the file.
func (s *Session) closeOutput() {
	if s.outFile == nil {
		return
	}

	if err := s.out.Flush(); err != nil {
		s.report("flushing output file", s.outputPath, err)
	}
	if err := s.outEnc.Close(); err != nil {
		s.report("flushing output file", s.outputPath, err)
	}
	if err := s.outFile.Close(); err != nil {
		s.report("closing output file", s.outputPath, err)
	}

	s.outFile = nil
	s.outEnc = nil
	s.out = nil
}

func (s *Session) closeInput() {
	if s.inFile == nil {
		return
	}

	if err := s.inFile.Close(); err != nil {
		s.report("closing input file", s.inputPath, err)
	}

	s.inFile = nil
	s.in = nil
}

// report sends a teardown failure to the error sink and the logger.
func (s *Session) report(action, path string, err error) {
	_, _ = fmt.Fprintf(s.err, "Error %s %s: %v\n", action, path, err)
	s.logger.Warn(action+" failed", "path", path, "error", err)
}

// classifyInputError maps a filesystem error on the input to an error code.
func classifyInputError(err error, path string) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return errors.New(errors.CodeNotFound, "File "+path+" not found.")
	case errors.Is(err, iofs.ErrPermission):
		return errors.Wrap(err, errors.CodePermissionDenied, "Security violation while trying to open "+path)
	default:
		return errors.Wrap(err, errors.CodeIOFailure, "Can't read input file "+path)
	}
}
