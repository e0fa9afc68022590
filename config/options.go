// Package config loads the options that drive a file session: the output
// file override, the output directory, the grammar encoding and the tool
// signature.
//
// Configuration priority: defaults < config file < environment variables
// (JJTREE_OUTPUT_FILE, ...) < flags bound by the caller.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/encoding"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/errors"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/session"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/textenc"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "JJTREE"

	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = "jjtree.yaml"

	// KeyOutputFile overrides the derived output file name.
	KeyOutputFile = "output_file"
	// KeyOutputDirectory is the directory the output file is created in.
	KeyOutputDirectory = "output_directory"
	// KeyGrammarEncoding names the encoding of input and output.
	KeyGrammarEncoding = "grammar_encoding"
	// KeyToolName is the generated-by signature.
	KeyToolName = "tool_name"
)

// Options is the tool configuration consumed by a file session.
type Options struct {
	// OutputFile overrides the derived output file name when non-empty.
	OutputFile string `mapstructure:"output_file"`
	// OutputDirectory receives the generated file; created when missing.
	OutputDirectory string `mapstructure:"output_directory"`
	// GrammarEncoding names the character encoding of input and output.
	// Empty selects UTF-8.
	GrammarEncoding string `mapstructure:"grammar_encoding"`
	// ToolName is the generated-by signature.
	ToolName string `mapstructure:"tool_name"`
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyOutputFile, "")
	v.SetDefault(KeyOutputDirectory, ".")
	v.SetDefault(KeyGrammarEncoding, "")
	v.SetDefault(KeyToolName, session.DefaultToolName)

	return v
}

// Load reads options from v. When path is set that file must exist;
// otherwise DefaultConfigFile is read only if it exists. The result is
// validated before it is returned.
func Load(v *viper.Viper, path string) (*Options, error) {
	file := path
	if file == "" {
		file = DefaultConfigFile
	}

	found, err := fs.Exists(file)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeIOFailure, "failed to check configuration file "+file)
	}
	if !found && path != "" {
		return nil, errors.Newf(errors.CodeNotFound, "configuration file %s not found", path)
	}

	if found {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithContext(
				err,
				errors.CodeInvalidConfig,
				"failed to read configuration",
				map[string]interface{}{
					"path": file,
				},
			)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode configuration")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &opts, nil
}

// Validate checks that the encoding is known and a tool name is set.
func (o *Options) Validate() error {
	if o == nil {
		return errors.New(errors.CodeInvalidInput, "configuration is nil")
	}
	if strings.TrimSpace(o.ToolName) == "" {
		return errors.New(errors.CodeInvalidConfig, "tool name must not be empty")
	}
	if _, err := o.Encoding(); err != nil {
		return err
	}
	return nil
}

// Encoding resolves GrammarEncoding.
//
//nolint:ireturn // encoding.Encoding is the x/text contract.
func (o *Options) Encoding() (encoding.Encoding, error) {
	enc, err := textenc.Lookup(o.GrammarEncoding)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "invalid grammar_encoding")
	}
	return enc, nil
}
