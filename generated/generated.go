// Package generated detects files produced by an earlier run of the tool
// and writes the header that marks them.
//
// A generated file starts with a comment naming the tools that produced it:
//
//	/*@bgen(jjtree) Generated By:JJTree: Do not edit this line. Calc.jj */
//
// Several tools are separated by '&' ("Generated By:JJTree&JavaCC:").
package generated

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
)

const (
	// Marker precedes the tool list in a header line.
	Marker = "Generated By:"

	// headerLimit bounds how much of a file is inspected for the header.
	headerLimit = 256
)

// Detector reports whether a file was produced by the named tool.
type Detector interface {
	IsGeneratedBy(tool, path string) (bool, error)
}

// HeaderDetector inspects the first line of a file for a generation header.
type HeaderDetector struct {
	fs fs.Filesystem
}

var _ Detector = (*HeaderDetector)(nil)

// NewHeaderDetector creates a detector reading files through filesystem.
func NewHeaderDetector(filesystem fs.Filesystem) *HeaderDetector {
	return &HeaderDetector{fs: filesystem}
}

// IsGeneratedBy reads at most the first 256 bytes of path and reports
// whether tool is listed in its header.
func (d *HeaderDetector) IsGeneratedBy(tool, path string) (bool, error) {
	f, err := d.fs.Open(path)
	if err != nil {
		return false, fmt.Errorf("generated: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, headerLimit)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, fmt.Errorf("generated: read %q: %w", path, err)
	}

	for _, name := range ToolNames(string(buf[:n])) {
		if name == tool {
			return true, nil
		}
	}
	return false, nil
}

// ToolNames extracts the tool list from the first line of content.
// It returns nil when the line carries no header.
func ToolNames(content string) []string {
	line := content
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}

	start := strings.Index(line, Marker)
	if start < 0 {
		return nil
	}
	rest := line[start+len(Marker):]

	end := strings.IndexByte(rest, ':')
	if end < 0 {
		return nil
	}

	var names []string
	for _, name := range strings.Split(rest[:end], "&") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Header returns the first line written to a file generated by tool.
func Header(tool, outputName string) string {
	return fmt.Sprintf("/*@bgen(%s) %s%s: Do not edit this line. %s */",
		strings.ToLower(tool), Marker, tool, outputName)
}
