// Package textenc resolves character encoding names to x/text encodings.
package textenc

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/errors"
)

// Default is the encoding used when none is configured. Go has no platform
// charset, so the environment default is UTF-8.
var Default encoding.Encoding = unicode.UTF8

// Lookup returns the encoding registered under name in the IANA index.
// Names are case-insensitive and accept aliases such as "latin1" or "cp1252".
// An empty name selects Default.
//
//nolint:ireturn // encoding.Encoding is the x/text contract.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.WrapWithContext(
			err,
			errors.CodeInvalidConfig,
			"unknown character encoding "+name,
			map[string]interface{}{"encoding": name},
		)
	}
	// The index knows some names it has no implementation for.
	if enc == nil {
		return nil, errors.Newf(errors.CodeInvalidConfig, "unsupported character encoding %s", name)
	}
	return enc, nil
}

// Name returns the canonical IANA name of enc, or "UTF-8" for nil.
func Name(enc encoding.Encoding) string {
	if enc == nil {
		return "UTF-8"
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return "unknown"
	}
	return name
}
