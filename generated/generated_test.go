package generated

import (
	iofs "io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs/billy"
)

func TestToolNames(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "single tool",
			content: "/*@bgen(jjtree) Generated By:JJTree: Do not edit this line. Calc.jj */\noptions {}",
			want:    []string{"JJTree"},
		},
		{
			name:    "several tools",
			content: "/* Generated By:JJTree&JavaCC: Do not edit this line. Calc.java */",
			want:    []string{"JJTree", "JavaCC"},
		},
		{
			name:    "header on second line is ignored",
			content: "options {}\r\n/* Generated By:JJTree: */",
			want:    nil,
		},
		{
			name:    "marker without terminating colon",
			content: "/* Generated By:JJTree */",
			want:    nil,
		},
		{
			name:    "plain grammar",
			content: "PARSER_BEGIN(Calc)",
			want:    nil,
		},
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToolNames(tt.content))
		})
	}
}

func TestHeader(t *testing.T) {
	h := Header("JJTree", "Calc.jj")

	assert.Equal(t, "/*@bgen(jjtree) Generated By:JJTree: Do not edit this line. Calc.jj */", h)
	assert.Equal(t, []string{"JJTree"}, ToolNames(h))
}

func TestHeaderDetector_IsGeneratedBy(t *testing.T) {
	fsys := billy.NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("/g/Calc.jj", []byte(Header("JJTree", "Calc.jj")+"\nPARSER_BEGIN(Calc)\n"), 0o644))
	require.NoError(t, fsys.WriteFile("/g/Calc.jjt", []byte("PARSER_BEGIN(Calc)\n"), 0o644))
	require.NoError(t, fsys.WriteFile("/g/Empty.jjt", nil, 0o644))
	long := strings.Repeat("x", 300) + " Generated By:JJTree: */"
	require.NoError(t, fsys.WriteFile("/g/Long.jjt", []byte(long), 0o644))

	d := NewHeaderDetector(fsys)

	tests := []struct {
		name string
		tool string
		path string
		want bool
	}{
		{name: "generated by tool", tool: "JJTree", path: "/g/Calc.jj", want: true},
		{name: "generated by other tool", tool: "JavaCC", path: "/g/Calc.jj", want: false},
		{name: "source grammar", tool: "JJTree", path: "/g/Calc.jjt", want: false},
		{name: "empty file", tool: "JJTree", path: "/g/Empty.jjt", want: false},
		{name: "header beyond inspected prefix", tool: "JJTree", path: "/g/Long.jjt", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.IsGeneratedBy(tt.tool, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaderDetector_MissingFile(t *testing.T) {
	d := NewHeaderDetector(billy.NewInMemoryFS())

	_, err := d.IsGeneratedBy("JJTree", "/missing.jjt")
	require.Error(t, err)
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}
