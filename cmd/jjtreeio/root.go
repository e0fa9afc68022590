package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/encoding"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/config"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/errors"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/generated"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/session"
)

const (
	flagOutputFile      = "output-file"
	flagOutputDirectory = "output-directory"
	flagGrammarEncoding = "grammar-encoding"
	flagConfig          = "config"
	flagVerbose         = "verbose"
)

// NewRootCmd creates the jjtreeio command writing progress to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "jjtreeio [flags] FILE...",
		Short:         "Copy tree grammars into annotated .jj grammars",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, v, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.String(flagOutputFile, "", "explicit output file name (default: derived from the input)")
	flags.String(flagOutputDirectory, "", "directory receiving generated files (default \".\")")
	flags.String(flagGrammarEncoding, "", "character encoding of grammar files (default UTF-8)")
	flags.String(flagConfig, "", "configuration file (default ./"+config.DefaultConfigFile+" when present)")
	flags.BoolP(flagVerbose, "v", false, "log session activity")

	// The err can safely be ignored, the flags are defined above.
	_ = v.BindPFlag(config.KeyOutputFile, flags.Lookup(flagOutputFile))
	_ = v.BindPFlag(config.KeyOutputDirectory, flags.Lookup(flagOutputDirectory))
	_ = v.BindPFlag(config.KeyGrammarEncoding, flags.Lookup(flagGrammarEncoding))

	return cmd
}

func runRoot(cmd *cobra.Command, v *viper.Viper, args []string, stdout, stderr io.Writer) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := config.Load(v, configPath)
	if err != nil {
		return err
	}
	enc, err := opts.Encoding()
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		out, err := generate(path, opts, enc, stdout, stderr, logger)
		if err != nil {
			failed++
			printError(stderr, err)
			logger.Debug("generation failed", "input", path, "code", errors.GetCode(err))
			continue
		}
		_, _ = fmt.Fprintf(stdout, "Annotated grammar generated successfully in %s\n", out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// generate writes the header and the decoded input lines to the output of
// a fresh session and returns the output path.
func generate(
	path string,
	opts *config.Options,
	enc encoding.Encoding,
	stdout, stderr io.Writer,
	logger *slog.Logger,
) (string, error) {
	s := session.New(
		session.WithEncoding(enc),
		session.WithToolName(opts.ToolName),
		session.WithInfoSink(stdout),
		session.WithErrorSink(stderr),
		session.WithLogger(logger),
	)
	defer s.CloseAll()

	if err := s.SetInput(path); err != nil {
		return "", err
	}
	if err := s.SetOutput(opts.OutputDirectory, opts.OutputFile); err != nil {
		return "", err
	}
	if err := s.Println(generated.Header(opts.ToolName, filepath.Base(s.OutputFileName()))); err != nil {
		return "", err
	}

	for {
		line, err := s.In().ReadString('\n')
		if line != "" {
			if perr := s.Print(line); perr != nil {
				return "", perr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, errors.CodeIOFailure, "Can't read input file "+path)
		}
	}

	if err := s.Flush(); err != nil {
		return "", err
	}

	out := s.OutputFileName()
	s.CloseAll()
	return out, nil
}
