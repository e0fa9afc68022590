package session

import (
	"path/filepath"
	"strings"
)

// GeneratedSuffix is the extension of files written by the tool.
const GeneratedSuffix = ".jj"

// ComputeOutputPath returns the output file name for inputPath.
//
// A non-empty override is returned verbatim. Otherwise the directory is
// stripped from inputPath and its extension is replaced by GeneratedSuffix,
// or GeneratedSuffix is appended when there is none. A name already ending
// in GeneratedSuffix is returned unchanged. Extensions compare
// case-sensitively. No filesystem access is made.
func ComputeOutputPath(inputPath, override string) string {
	if override != "" {
		return override
	}

	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	if ext == GeneratedSuffix {
		return base
	}
	return strings.TrimSuffix(base, ext) + GeneratedSuffix
}
